package manager

// MinPlayersToStart is the minimum number of ready players required to
// leave the lobby.
const MinPlayersToStart = 2

// MaxPlayers is the largest player count the board and route catalog support.
const MaxPlayers = 5
