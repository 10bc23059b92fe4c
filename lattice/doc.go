// Package lattice provides pure, stateless predicates over the integer
// 3D block lattice: six-direction adjacency and neighbor enumeration.
//
// Position equality and hashing are structural (Position is a plain,
// comparable struct), so it can be used directly as a map key.
package lattice
