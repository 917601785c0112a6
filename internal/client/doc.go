// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the storybook terminal client.
//
// [NewApp] connects the HTTP server adapter, restores the saved session and
// builds the terminal UI; [App.Run] hands the terminal to the UI until the
// user quits.
package client
