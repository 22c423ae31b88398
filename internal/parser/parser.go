package parser

import "git.lost.host/meutraa/dotw/internal/game"

type Parser interface {
	Parse(file string) ([]*game.Chart, error)
}
