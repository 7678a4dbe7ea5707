// Package parser reads and writes version strings embedded in project
// files: JSON, YAML, and TOML manifests addressed by dot-notation field
// paths, plain text files, and arbitrary files addressed by a regex
// capturing group.
package parser
