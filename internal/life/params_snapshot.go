package life

import (
	"strconv"

	"stalagmite/internal/core"
)

// Parameters reports the configuration and live counters for display.
func (l *Life) Parameters() core.ParameterSnapshot {
	last := l.last
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("rows", "Rows", l.cfg.Rows),
				intParam("cols", "Cols", l.cfg.Cols),
				int64Param("seed", "Seed", l.seed),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				intParam("cells", "Seed cells", l.cfg.Cells),
				intParam("floor", "Floor", l.cfg.Floor()),
				intParam("population", "Alive", last.Population),
				intParam("injected", "Injected", last.Injected),
			},
		},
		{
			Name: "History",
			Params: []core.Parameter{
				intParam("levels", "Levels", l.cfg.Levels),
				intParam("depth", "Depth", l.history.Len()),
				uint64Param("generation", "Generation", l.generation),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func int64Param(key, label string, v int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(v, 10)}
}

func uint64Param(key, label string, v uint64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatUint(v, 10)}
}
