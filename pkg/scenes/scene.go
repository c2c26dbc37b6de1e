package scenes

import (
	"github.com/decker502/sunnyside/pkg/game"
)

// Scene is a type alias for game.Scene so hosts can depend on this package alone.
type Scene = game.Scene
