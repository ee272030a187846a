package explore

import (
	"strconv"

	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/api"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/db"
)

func toLikers(decisions []db.Decision, nextToken *string) *api.ListLikedYouResponse {
	resp := &api.ListLikedYouResponse{Likers: make([]api.Liker, 0, len(decisions))}
	for _, d := range decisions {
		resp.Likers = append(resp.Likers, api.Liker{
			ActorID:       strconv.FormatUint(d.ActorID, 10),
			Kind:          d.Kind,
			UnixTimestamp: uint64(d.UpdatedAt.UnixMilli()),
		})
	}
	resp.NextPaginationToken = nextToken
	return resp
}
