// Package tui implements the storybook terminal client on Bubble Tea.
//
// [RootModel] routes between three pages:
//
//   - auth: login and registration;
//   - shelf: book list with filters and a book panel for reading, writing
//     and editing;
//   - desk: the caller's private stickers.
//
// All server calls go through [adapter.ServerAdapter] and run as tea.Cmd
// functions, so Update never blocks. The session (token, user and theme) is
// saved with [session.Store] after login, on theme changes and cleared on
// logout.
package tui
