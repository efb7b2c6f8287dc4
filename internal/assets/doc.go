// Package assets provides the YAML style sheets used by the renderers.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in presets (styled, simple) via go:embed
//	    ├── FilesystemLoader  - custom sheets from a directory on disk
//	    └── AssetResolver     - custom first, embedded on not-found
//
// # Directory Structure
//
//	{basePath}/
//	└── styles/
//	    └── {name}.yaml
//
// # Security
//
// Style names are validated before use. FilesystemLoader resolves symlinks
// and verifies paths stay within basePath.
package assets
