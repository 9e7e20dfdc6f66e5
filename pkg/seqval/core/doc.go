// Package core contains ambient plumbing shared by the chain packages. It does
// not define validation logic; it only provides the structured loggers chains
// write their diagnostics to.
package core
