package state

import (
	"fmt"

	"github.com/pkg/errors"
)

// Team owning a token. Only the lowest bit is meaningful.
type Team uint8

const (
	Muscovite Team = iota
	Swede

	// NumTeams currently limited to 2.
	NumTeams = 2
)

//go:generate go tool enumer -type=Team -values -text -json token.go

// Opponent returns the other team.
func (t Team) Opponent() Team {
	return 1 - t
}

// Rank of a token: a plain soldier or the king.
type Rank uint8

const (
	Soldier Rank = iota
	King
)

//go:generate go tool enumer -type=Rank -values -text -json token.go

// Token is a playing piece. It is a value type, always embedded in a Tile or
// rebuilt from its encoding.
type Token struct {
	Team Team
	Rank Rank
}

// Bits used in the 3-bit token encoding.
const (
	tokenRankBit   = 0x01
	tokenTeamBit   = 0x02
	tokenMarkerBit = 0x04
	tokenMask      = tokenMarkerBit | tokenTeamBit | tokenRankBit
)

// NewToken creates a token. Team and rank are expected to be valid.
func NewToken(team Team, rank Rank) Token {
	return Token{Team: team, Rank: rank}
}

// IsKing returns whether the token is a king.
func (tok Token) IsKing() bool {
	return tok.Rank == King
}

// String returns "<Team> <Rank>", e.g. "Swede King".
func (tok Token) String() string {
	return fmt.Sprintf("%s %s", tok.Team, tok.Rank)
}

// Encode packs the token into 3 bits: bit 2 is the marker (always set), bit 1
// the team and bit 0 the rank. The result is always in [4, 7].
//
// The marker is what distinguishes a Muscovite Soldier (team=0, rank=0) from
// an absent token in a tile encoding.
func (tok Token) Encode() uint8 {
	return tokenMarkerBit | (uint8(tok.Team)&1)<<1 | uint8(tok.Rank)&1
}

// DecodeToken extracts a token from the lower 3 bits of encoded: higher bits
// are ignored.
//
// It returns ErrInvalidToken if the marker bit is not set, meaning there is no
// token encoded.
func DecodeToken(encoded uint8) (Token, error) {
	if encoded&tokenMarkerBit == 0 {
		return Token{}, errors.Wrapf(ErrInvalidToken, "marker bit not set in 0x%02x", encoded)
	}
	return Token{
		Team: Team((encoded & tokenTeamBit) >> 1),
		Rank: Rank(encoded & tokenRankBit),
	}, nil
}
