// Package tenthash implements TentHash, a 160-bit non-cryptographic hash
// intended for data identification and content-addressable storage.
//
// TentHash is explicitly not designed to stand up to attacks: its
// otherwise strong collision resistance only holds under non-adversarial
// conditions. An attacker with knowledge of the algorithm can construct
// colliding inputs by running the mixer backward. Do not use it anywhere
// a cryptographic hash is required.
package tenthash
