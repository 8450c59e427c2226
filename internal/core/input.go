package core

// Action is a semantic player intent, abstracted from physical key presses.
// The front end maps keys to actions and actions to engine signals.
type Action int

const (
	ActionNone        Action = iota
	ActionJump               // Space, W, Up - jump over obstacles and attacks
	ActionAttack             // X, F - hit the boss
	ActionStart              // R, Enter - start or retry a run
	ActionBack               // B, Esc - return to the menu
	ActionShop               // P - open the shop from the menu
	ActionLeaderboard        // Tab, L - open the leaderboard from the menu
	ActionUp                 // K, W, Up - move a cursor up
	ActionDown               // J, S, Down - move a cursor down
	ActionConfirm            // Enter in lists - buy the selected upgrade
	ActionQuit               // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionAttack:
		return "Attack"
	case ActionStart:
		return "Start"
	case ActionBack:
		return "Back"
	case ActionShop:
		return "Shop"
	case ActionLeaderboard:
		return "Leaderboard"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
