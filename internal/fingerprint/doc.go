// Package fingerprint computes cache-busting values for local asset files.
//
// Two strategies are provided:
//
//	ModTime      unix seconds of the file's last modification, read through a Clock
//	ContentHash  xxhash64 of the file content, in hex
//
// Both are fail-soft: a file that cannot be read yields an empty fingerprint,
// which callers treat as "append nothing". Neither caches results, so every call
// reflects the file as it is now.
package fingerprint
