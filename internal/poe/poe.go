// Package poe implements the proof of existence pallet: a ledger recording
// which account claimed a given content fingerprint first.
package poe

import (
	"cmp"
	"errors"
	"maps"
)

var (
	// ErrClaimExists is returned when the content is already claimed,
	// no matter by whom.
	ErrClaimExists = errors.New("poe: claim already exists")

	// ErrClaimNotFound is returned when the content is not claimed.
	ErrClaimNotFound = errors.New("poe: claim does not exist")

	// ErrNotClaimOwner is returned when the caller tries to revoke a
	// claim held by someone else.
	ErrNotClaimOwner = errors.New("poe: caller is not the owner of the claim")
)

// Pallet maps content fingerprints to the single account that owns the
// claim on them. Revoking frees the fingerprint for anyone to claim again;
// no history is kept.
type Pallet[AccountID cmp.Ordered, Content cmp.Ordered] struct {
	claims map[Content]AccountID
}

// New returns an empty claims ledger.
func New[AccountID cmp.Ordered, Content cmp.Ordered]() *Pallet[AccountID, Content] {
	return &Pallet[AccountID, Content]{
		claims: make(map[Content]AccountID),
	}
}

// Claim returns the owner of content and whether content is claimed at all.
func (p *Pallet[AccountID, Content]) Claim(content Content) (AccountID, bool) {
	owner, ok := p.claims[content]
	return owner, ok
}

// CreateClaim records caller as the owner of content.
func (p *Pallet[AccountID, Content]) CreateClaim(caller AccountID, content Content) error {
	if _, ok := p.claims[content]; ok {
		return ErrClaimExists
	}
	p.claims[content] = caller
	return nil
}

// RevokeClaim removes caller's claim on content.
func (p *Pallet[AccountID, Content]) RevokeClaim(caller AccountID, content Content) error {
	owner, ok := p.claims[content]
	if !ok {
		return ErrClaimNotFound
	}
	if owner != caller {
		return ErrNotClaimOwner
	}
	delete(p.claims, content)
	return nil
}

// Claims returns a copy of the claims ledger.
func (p *Pallet[AccountID, Content]) Claims() map[Content]AccountID {
	return maps.Clone(p.claims)
}
