// Package pkg provides the core libraries for gwsumm summary-page generation.
//
// # Overview
//
// gwsumm turns a TOML run configuration into a static web site of detector
// summary pages. The pkg directory is organized into four main areas:
//
//  1. Domain logic - tab tree, plot grid, observing states ([tabs], [grid],
//     [plot], [state], [span])
//  2. Composition - HTML construction and index documents ([markup])
//  3. Infrastructure - configuration, fragment caching, diagnostics
//     ([config], [cache], [observability], [treeviz])
//  4. Orchestration - the build pipeline ([pipeline])
//
// # Architecture
//
// The typical data flow through gwsumm:
//
//	TOML run configuration
//	         ↓
//	    [config] package (parse + assemble the tab tree)
//	         ↓
//	    [tabs] package (tab variants, grid placement, state fragments)
//	         ↓
//	    [markup] package (HTML documents and fragments)
//	         ↓
//	    index.html + per-state fragments on disk
//
// The [pipeline] package drives the flow end to end and skips fragments
// whose fingerprints are unchanged via the [cache] package.
package pkg
