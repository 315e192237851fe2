package consts

const (
	// NoOne is typed in the answerer slot when nobody could show a card.
	NoOne = "-"

	MinPlayers = 2
	MaxPlayers = 6

	SnapshotExt        = ".clue"
	SnapshotTimeLayout = "20060102_150405"
	SnapshotVersion    = 1

	WatchPath = "/ws"
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsInputInvalid    = NewErr(2, false, "Input invalid. ")
	ErrorsUnknownPlayer   = NewErr(3, false, "Unknown player. ")
	ErrorsUnknownCard     = NewErr(4, false, "Unknown card. ")
	ErrorsEmptyLog        = NewErr(5, false, "No turns recorded. ")
	ErrorsPlayersInvalid  = NewErr(6, true, "Players invalid. ")
	ErrorsBoardInvalid    = NewErr(7, true, "Board invalid. ")
	ErrorsSnapshotVersion = NewErr(8, true, "Snapshot version unsupported. ")
	ErrorsSnapshotInvalid = NewErr(9, true, "Snapshot invalid. ")
)
