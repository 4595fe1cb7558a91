package service

import (
	"context"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

// phase records when an ownership check runs relative to the primary entity
// lookup. The two phases reject with different errors, and clients depend on
// the distinction.
type phase int

const (
	// phasePayload checks run before the primary lookup: a create payload or
	// a list-by-user parameter naming a userId.
	phasePayload phase = iota
	// phaseResource checks run against a resource (or its ownership-chain
	// ancestor) that has already been loaded.
	phaseResource
)

// requireOwner compares the session user against the resolved owner.
func requireOwner(actorID, ownerID string, p phase) error {
	if actorID == ownerID {
		return nil
	}
	if p == phasePayload {
		return domain.ErrPayloadOwnerMismatch
	}
	return domain.ErrResourceOwnerMismatch
}

// hop resolves one link of an ownership chain. Given an entity id it returns
// the owner recorded on that entity and the id of the next parent to visit,
// "" when the chain ends there. A missing entity returns the entity's
// not-found sentinel.
type hop func(ctx context.Context, id string) (ownerID, parentID string, err error)

// chain is an ordered list of hops from a resource up to the User that
// ultimately owns it. The owner reported by the final hop is authoritative;
// owners recorded on intermediate links are ignored.
type chain []hop

// owner walks the chain starting from id.
func (c chain) owner(ctx context.Context, id string) (string, error) {
	var ownerID string
	next := id
	for _, h := range c {
		var err error
		ownerID, next, err = h(ctx, next)
		if err != nil {
			return "", err
		}
	}
	return ownerID, nil
}

// authorize walks the chain and compares the resolved owner to the actor.
func (c chain) authorize(ctx context.Context, actorID, id string, p phase) error {
	ownerID, err := c.owner(ctx, id)
	if err != nil {
		return err
	}
	return requireOwner(actorID, ownerID, p)
}
