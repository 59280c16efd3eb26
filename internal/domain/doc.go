// Package domain contains the core model for rootplot: plot jobs, data
// objects, styling and the figure scene handed to a renderer.
//
// The domain does not depend on config syntax, file formats, the CLI or the
// drawing backend; infra adapters map into and out of these types.
package domain
