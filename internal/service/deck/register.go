package deck

import (
	"google.golang.org/grpc"

	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/api"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/app"
)

// Registrar ties the deck service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

func (r *Registrar) Register(s *grpc.Server) {
	api.RegisterDeckServiceServer(s, NewDeckService(r.appCtx))
}
