package constants

// Version is replaced at build time with -ldflags
var Version = "source"

// CoiledPin is the coiled client pinned into environments that do not pin one
const CoiledPin = "coiled==0.0.25"

const (
	RepoOwner = "coiled"
	RepoName  = "coiled-examples"
)
