package builder

// Method names used to prefix errors with the constructor name for context.
const (
	MethodPath              = "Path"
	MethodCycle             = "Cycle"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodRandomTree        = "RandomTree"
	MethodRandomSparse      = "RandomSparse"
	MethodRandomGnm         = "RandomGnm"
	MethodFromPairs         = "FromPairs"
)

// Minimum sizes per topology.
const (
	MinPathNodes     = 1
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinWheelNodes    = 4
	MinCompleteNodes = 1
	MinGridDim       = 1
	MinRandomNodes   = 1
	MinPartition     = 1
)

// Probability domain for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
