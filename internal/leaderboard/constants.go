package leaderboard

// Log messages
const (
	LogMsgRegisterCalled   = "RegisterParticipant called"
	LogMsgClaimCalled      = "ClaimPoints called"
	LogMsgClaimCompleted   = "Claim completed"
	LogMsgHistoryAppendErr = "Score committed but history append failed"
)

// Error context messages
const (
	ErrContextFailedToCreateParticipant = "failed to create participant"
	ErrContextFailedToAddPoints         = "failed to add points"
	ErrContextFailedToAppendHistory     = "failed to append claim history"
	ErrContextFailedToListParticipants  = "failed to list participants"
	ErrContextFailedToListHistory       = "failed to list claim history"
)
