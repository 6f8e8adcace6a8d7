package app

import (
	"github.com/vk/aoc2023/internal/registry"
	"github.com/vk/aoc2023/modules/day1"
	"github.com/vk/aoc2023/modules/day2"
	"github.com/vk/aoc2023/modules/day3"
	"github.com/vk/aoc2023/modules/day4"
)

// coreModules is the definitive list of all puzzles that are compiled into
// the aoc binary.
var coreModules = []registry.Module{
	&day1.Module{},
	&day2.Module{},
	&day3.Module{},
	&day4.Module{},
}
