// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is a runnable client application.
type Client interface {
	// Run starts the client and blocks until exit.
	Run() error
}
