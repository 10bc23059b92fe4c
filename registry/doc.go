// Package registry owns the world-wide position-to-network index: it
// routes block placement and removal to the right Network, creates new
// Networks, merges Networks that placement bridges together, and
// offers a full flood-fill recompute for bulk loads and post-removal
// split detection.
package registry
