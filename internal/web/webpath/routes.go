package webpath

const (
	Home       = "/"
	Simulate   = "/simulate"
	Simulation = "/simulations/:id"

	Api               = "/api"
	ApiSimulations    = Api + "/simulations"
	ApiGetSimulation  = ApiSimulations + "/:id"
	simulationsPrefix = "/simulations/"
)

// SimulationPath returns the HTML page of one report.
func SimulationPath(id string) string {
	return simulationsPrefix + id
}

func Path() map[string]string {
	return map[string]string{
		"Home":           Home,
		"Simulate":       Simulate,
		"Simulations":    simulationsPrefix,
		"Api":            Api,
		"ApiSimulations": ApiSimulations,
	}
}
