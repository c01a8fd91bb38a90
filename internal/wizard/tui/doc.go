// Package tui implements the interactive setup wizard for aion.
//
// The wizard walks the user through four steps and returns a validated
// configuration. It is built on Bubble Tea and follows the Elm architecture:
// Model holds the whole session, Update returns a new Model for every
// message and View is a pure function of the Model.
//
// # Steps
//
//  1. Language: pick the UI language. Languages that are listed but not yet
//     supported cannot be selected.
//  2. Provider: pick the AI provider. Selecting one resets the model, base URL
//     and API key variable to that provider's defaults.
//  3. Model: type the model name. A blank name is rejected.
//  4. Summary: review the settings. Enter validates and finishes.
//
// # Usage Example
//
//	store, _ := config.NewStore("")
//	existing, _ := store.LoadOrCreate()
//
//	cfg, err := tui.Run(ctx, existing)
//	switch {
//	case tui.IsCancelled(err):
//	    return nil // nothing to save
//	case err != nil:
//	    fmt.Fprintln(os.Stderr, tui.TroubleshootingHint(err))
//	    return err
//	}
//	return store.Save(cfg)
//
// # Key Bindings
//
//   - ↑/↓ move, Enter confirms the step
//   - Esc, Backspace, ← or b go back; going back from the first step quits
//   - q or ctrl+c quit without saving
//   - c toggles colors, a toggles animation
//
// On the model step printable keys, including b, q, c and a, are typed into
// the field and Backspace deletes. Esc or ← go back and ctrl+c quits.
//
// # Rendering
//
// Every frame has a header (title, step, spinner), a content pane with the
// step progress indicator, a help pane and a footer with the status line and
// key hints. The screen redraws every 60ms; the animation advances every 90ms
// while enabled.
//
// # Terminal Handling
//
// Run snapshots the terminal mode before starting and restores it when the
// session ends, whether by success, cancellation, error or panic.
//
// # Thread Safety
//
// The Bubble Tea framework ensures thread safety through message passing.
// All model updates occur in a single goroutine.
package tui
