package push

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Registry keeps browser push tokens per account. A user may have
// several browsers registered at once; dead tokens are pruned when FCM
// rejects them.
type Registry struct {
	rdb *redis.Client
}

func NewRegistry(rdb *redis.Client) *Registry {
	return &Registry{rdb: rdb}
}

const trackedAuctionsKey = "push_watch:auctions"

func tokenKey(userID int) string {
	return "push_tokens:" + strconv.Itoa(userID)
}

func watchersKey(auctionID int) string {
	return "push_watch:" + strconv.Itoa(auctionID)
}

// Add registers a browser token for the user.
func (r *Registry) Add(ctx context.Context, userID int, token string) error {
	if err := r.rdb.SAdd(ctx, tokenKey(userID), token).Err(); err != nil {
		return fmt.Errorf("push token add: %w", err)
	}
	return nil
}

// Remove drops one token, typically after the browser revoked it.
func (r *Registry) Remove(ctx context.Context, userID int, token string) error {
	if err := r.rdb.SRem(ctx, tokenKey(userID), token).Err(); err != nil {
		return fmt.Errorf("push token remove: %w", err)
	}
	return nil
}

// Tokens lists every registered browser for the user.
func (r *Registry) Tokens(ctx context.Context, userID int) ([]string, error) {
	tokens, err := r.rdb.SMembers(ctx, tokenKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("push tokens: %w", err)
	}
	return tokens, nil
}

// WatchAuction marks the user as interested in bid and ending alerts
// for the auction.
func (r *Registry) WatchAuction(ctx context.Context, auctionID, userID int) error {
	if err := r.rdb.SAdd(ctx, watchersKey(auctionID), userID).Err(); err != nil {
		return fmt.Errorf("push watch add: %w", err)
	}
	if err := r.rdb.SAdd(ctx, trackedAuctionsKey, auctionID).Err(); err != nil {
		return fmt.Errorf("push watch track: %w", err)
	}
	return nil
}

// UnwatchAuction drops the user's interest. The auction stops being
// tracked once nobody is left.
func (r *Registry) UnwatchAuction(ctx context.Context, auctionID, userID int) error {
	if err := r.rdb.SRem(ctx, watchersKey(auctionID), userID).Err(); err != nil {
		return fmt.Errorf("push watch remove: %w", err)
	}
	left, err := r.rdb.SCard(ctx, watchersKey(auctionID)).Result()
	if err != nil {
		return fmt.Errorf("push watch count: %w", err)
	}
	if left == 0 {
		if err := r.rdb.SRem(ctx, trackedAuctionsKey, auctionID).Err(); err != nil {
			return fmt.Errorf("push watch untrack: %w", err)
		}
	}
	return nil
}

// Watchers lists the users who asked for alerts on the auction.
func (r *Registry) Watchers(ctx context.Context, auctionID int) ([]int, error) {
	raw, err := r.rdb.SMembers(ctx, watchersKey(auctionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("push watchers: %w", err)
	}
	ids := make([]int, 0, len(raw))
	for _, s := range raw {
		id, err := strconv.Atoi(s)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// TrackedAuctions lists every auction with at least one interested
// user, so the ticker polls them even with no page open.
func (r *Registry) TrackedAuctions(ctx context.Context) ([]int, error) {
	raw, err := r.rdb.SMembers(ctx, trackedAuctionsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("push tracked auctions: %w", err)
	}
	ids := make([]int, 0, len(raw))
	for _, s := range raw {
		id, err := strconv.Atoi(s)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ClearAuction removes all interest in a finished auction.
func (r *Registry) ClearAuction(ctx context.Context, auctionID int) error {
	if err := r.rdb.Del(ctx, watchersKey(auctionID)).Err(); err != nil {
		return fmt.Errorf("push watch clear: %w", err)
	}
	if err := r.rdb.SRem(ctx, trackedAuctionsKey, auctionID).Err(); err != nil {
		return fmt.Errorf("push watch untrack: %w", err)
	}
	return nil
}
