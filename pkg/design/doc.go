// Package design loads a design-system configuration and exposes the
// read-only query surface the linter classifies nodes against: valid style
// property names, shorthand and composite tables, the token registry,
// pattern and recipe components, include/exclude file matching, and the
// import sources that belong to the generated design-system runtime.
//
// Configuration files (panda.config.yaml, panda.config.yml or
// panda.config.json) are layered over an embedded preset with koanf. A
// Loader caches one Context per resolved configuration path for the
// lifetime of the process and never runs two loads of the same path at
// once.
package design
