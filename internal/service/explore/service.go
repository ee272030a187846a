package explore

import (
	"context"
	"strconv"

	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/api"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/app"
	svcErr "github.com/rishi048229/Shubh-vivah-app-sub002/internal/errors"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/metrics"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/repository"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/swipe"
)

// likersPageSize is the page length of the "liked you" lists.
const likersPageSize = 5

// Service implements the Explore gRPC API.
// It contains the business logic on top of repository and cache layers.
type Service struct {
	appCtx       *app.AppContext
	decisionRepo *repository.DecisionRepository

	api.UnimplementedExploreServiceServer
}

// NewExploreService creates a new Explore service with dependencies from AppContext.
// Dependencies include:
//   - DB connection (via DecisionRepository)
//   - RedisCache for counters from AppContext
func NewExploreService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:       appCtx,
		decisionRepo: repository.NewDecisionRepository(appCtx.DB),
	}
}

// ListLikedYou returns all users who liked or superliked the given recipient.
//
// Behavior:
//   - Fetches likes for the given recipient via repository.GetLikers.
//   - Excludes users that the recipient explicitly passed.
//   - Supports cursor-based pagination with paginationToken.
//   - Returns actor_id, kind and timestamp.
//
// Example:
//
//	svc.ListLikedYou(ctx, &api.ListLikedYouRequest{RecipientUserID: "42"})
func (s *Service) ListLikedYou(ctx context.Context, req *api.ListLikedYouRequest) (*api.ListLikedYouResponse, error) {
	s.appCtx.Logger.Debug("ListLikedYou called", "recipient", req.RecipientUserID)

	recipientID, err := strconv.ParseUint(req.RecipientUserID, 10, 64)
	if err != nil {
		s.appCtx.Logger.Error("Invalid recipient_user_id", "value", req.RecipientUserID, "err", err)
		return nil, svcErr.InvalidArgument("recipient_user_id must be a valid uint64")
	}

	decisions, nextToken, err := s.decisionRepo.GetLikers(ctx, recipientID, req.PaginationToken, likersPageSize)
	if err != nil {
		s.appCtx.Logger.Error("GetLikers failed", "err", err)
		return nil, svcErr.Map(err)
	}

	resp := toLikers(decisions, nextToken)
	s.appCtx.Logger.Debug("ListLikedYou result", "liker_count", len(resp.Likers))
	return resp, nil
}

// ListNewLikedYou returns users who liked the recipient but have not been liked back.
//
// Behavior:
//   - Uses repository.GetNewLikers to exclude mutual likes.
//   - Excludes users the recipient explicitly passed.
//   - Supports cursor-based pagination.
func (s *Service) ListNewLikedYou(ctx context.Context, req *api.ListLikedYouRequest) (*api.ListLikedYouResponse, error) {
	s.appCtx.Logger.Debug("ListNewLikedYou called", "recipient", req.RecipientUserID)

	recipientID, err := strconv.ParseUint(req.RecipientUserID, 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("recipient_user_id must be a valid uint64")
	}

	decisions, nextToken, err := s.decisionRepo.GetNewLikers(ctx, recipientID, req.PaginationToken, likersPageSize)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return toLikers(decisions, nextToken), nil
}

// CountLikedYou returns how many users liked the recipient.
// Cache-first strategy:
//  1. Attempts to read from Redis (likes:count:userID).
//  2. On a miss, falls back to DB via repository.CountLikers.
//  3. On DB fetch, updates Redis with a 1h TTL.
func (s *Service) CountLikedYou(ctx context.Context, req *api.CountLikedYouRequest) (*api.CountLikedYouResponse, error) {
	s.appCtx.Logger.Debug("CountLikedYou called", "recipient", req.RecipientUserID)

	recipientID, err := strconv.ParseUint(req.RecipientUserID, 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("recipient_user_id must be a valid uint64")
	}

	if n, ok, err := s.appCtx.RedisCache.GetLikeCount(ctx, recipientID); err == nil && ok && n >= 0 {
		return &api.CountLikedYouResponse{Count: uint64(n)}, nil
	} else if err != nil {
		s.appCtx.Logger.Warn("like count cache read failed", "err", err)
	}

	// fallback: DB
	count, err := s.decisionRepo.CountLikers(ctx, recipientID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	_ = s.appCtx.RedisCache.SetLikeCount(ctx, recipientID, count)

	return &api.CountLikedYouResponse{Count: uint64(count)}, nil
}

// PutDecision records a decision made outside a swipe deck and returns
// whether it resulted in a mutual like.
//
// Behavior:
//   - Validates actor and recipient IDs (must be different) and the kind.
//   - Inserts/updates via repository.CreateOrUpdateDecision.
//   - For like/superlike, checks for mutual like via repository.HasLiked.
//   - Recomputes the cached like counts of both users.
func (s *Service) PutDecision(ctx context.Context, req *api.PutDecisionRequest) (*api.PutDecisionResponse, error) {
	s.appCtx.Logger.Debug("PutDecision called",
		"actor", req.ActorUserID,
		"recipient", req.RecipientUserID,
		"kind", req.Kind,
	)
	actorID, err := strconv.ParseUint(req.ActorUserID, 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("actor_user_id must be a valid uint64")
	}
	recipientID, err := strconv.ParseUint(req.RecipientUserID, 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("recipient_user_id must be a valid uint64")
	}
	if actorID == recipientID {
		return nil, svcErr.InvalidArgument("cannot decide on yourself")
	}
	kind, err := swipe.ParseDecisionKind(req.Kind)
	if err != nil {
		return nil, svcErr.InvalidArgument("kind must be pass, like or superlike")
	}

	if err := s.decisionRepo.CreateOrUpdateDecision(ctx, actorID, recipientID, kind, 0); err != nil {
		return nil, svcErr.Map(err)
	}
	metrics.Decision(kind.String())

	var mutual bool
	if kind.Liked() {
		mutual, err = s.decisionRepo.HasLiked(ctx, recipientID, actorID)
		if err != nil {
			s.appCtx.Logger.Error("HasLiked failed", "err", err)
			return nil, svcErr.Map(err)
		}
	}

	// A pass also hides the recipient from the actor's own likers.
	if err := s.appCtx.RedisCache.RefreshLikeCounts(ctx, s.decisionRepo, recipientID, actorID); err != nil {
		s.appCtx.Logger.Warn("like counter refresh failed", "err", err)
	}
	return &api.PutDecisionResponse{MutualLikes: mutual}, nil
}
