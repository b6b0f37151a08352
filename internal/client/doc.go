// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, client services, and the background wishlist
// refresher into a single process lifecycle.
package client
