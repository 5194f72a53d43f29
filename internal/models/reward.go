package models

type ClaimRewardRequest struct {
	Task string `json:"task" validate:"required"`
}

type ClaimRewardResponse struct {
	Coins   int    `json:"coins"`
	Message string `json:"message"`
}

type CoinBalanceResponse struct {
	Coins   int           `json:"coins"`
	History []CoinHistory `json:"history"`
}

// LeaderboardEntry is one public leaderboard row: an ambassador and how many
// signups used their code.
type LeaderboardEntry struct {
	Name         string `json:"name"`
	College      string `json:"college"`
	ReferralCode string `json:"referral_code"`
	Referrals    int64  `json:"referrals"`
}
