package appconf

// Environment represents the operating environment of the Application.
type Environment int

const (
	Development Environment = iota
	Test
	Staging
	Production
)

// EnvFlagToEnvironment converts an environment name from a command-line flag
// into an Environment value. Unknown names are treated as Development.
func EnvFlagToEnvironment(name string) Environment {
	switch name {
	case "test":
		return Test
	case "staging":
		return Staging
	case "production":
		return Production
	default:
		return Development
	}
}

func (env Environment) String() string {
	switch env {
	case Test:
		return "test"
	case Staging:
		return "staging"
	case Production:
		return "production"
	default:
		return "development"
	}
}
