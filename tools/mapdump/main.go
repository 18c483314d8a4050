package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"haste/internal/domain"
	"haste/pkg/dungeon"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "dump":
		if len(os.Args) < 3 {
			fmt.Println("Usage: mapdump dump <seed> [level]")
			return
		}
		seed, err := strconv.ParseInt(os.Args[2], 10, 64)
		if err != nil {
			fmt.Printf("Invalid seed: %v\n", err)
			return
		}
		level := 1
		if len(os.Args) > 3 {
			if level, err = strconv.Atoi(os.Args[3]); err != nil {
				fmt.Printf("Invalid level: %v\n", err)
				return
			}
		}
		g, start := dungeon.Generate(level, rand.New(rand.NewSource(seed)))
		pockets := dungeon.Unreachable(g, start)
		fmt.Print(render(g, pockets))
		fmt.Printf("seed=%d level=%d start=(%d,%d) unreachable=%d\n", seed, level, start.Row, start.Col, len(pockets))
	case "rooms":
		if len(os.Args) < 3 {
			fmt.Println("Usage: mapdump rooms <seed> [level]")
			return
		}
		seed, err := strconv.ParseInt(os.Args[2], 10, 64)
		if err != nil {
			fmt.Printf("Invalid seed: %v\n", err)
			return
		}
		level := 1
		if len(os.Args) > 3 {
			if level, err = strconv.Atoi(os.Args[3]); err != nil {
				fmt.Printf("Invalid level: %v\n", err)
				return
			}
		}
		// Тот же порядок вызовов rng, что и в dungeon.Generate
		b := dungeon.NewLevel(level, rand.New(rand.NewSource(seed))).WithRooms(dungeon.RoomsPerLevel)
		rooms := b.Rooms()
		for i, r := range rooms {
			c := r.Center()
			fmt.Printf("room %d: x=%d y=%d w=%d h=%d center=(%d,%d)\n", i, r.X, r.Y, r.W, r.H, c.Row, c.Col)
		}
		for i := range rooms {
			for j := i + 1; j < len(rooms); j++ {
				if rooms[i].Intersects(rooms[j]) {
					fmt.Printf("overlap: %d and %d\n", i, j)
				}
			}
		}
	case "arena":
		g, start, err := dungeon.BossArena()
		if err != nil {
			fmt.Printf("Arena error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(render(g, dungeon.Unreachable(g, start)))
	case "scan":
		if len(os.Args) < 3 {
			fmt.Println("Usage: mapdump scan <count>")
			return
		}
		count, err := strconv.Atoi(os.Args[2])
		if err != nil || count <= 0 {
			fmt.Printf("Invalid count: %s\n", os.Args[2])
			return
		}
		broken := 0
		for seed := int64(1); seed <= int64(count); seed++ {
			g, start := dungeon.Generate(1, rand.New(rand.NewSource(seed)))
			if n := len(dungeon.Unreachable(g, start)); n > 0 {
				broken++
				fmt.Printf("seed=%d unreachable=%d\n", seed, n)
			}
		}
		fmt.Printf("%d/%d maps have unreachable floor\n", broken, count)
	default:
		printHelp()
	}
}

// render рисует карту; недостижимый пол помечается '?'
func render(g *domain.Grid, pockets []domain.Position) string {
	marked := make(map[domain.Position]bool, len(pockets))
	for _, p := range pockets {
		marked[p] = true
	}

	var b strings.Builder
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			p := domain.Position{Row: r, Col: c}
			switch {
			case marked[p]:
				b.WriteByte('?')
			case g.At(p).Kind == domain.TileWall:
				b.WriteByte('#')
			case g.At(p).Kind == domain.TilePlayer:
				b.WriteByte('P')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func printHelp() {
	fmt.Println(`Map Dump - просмотр процедурных карт
Commands:
  dump <seed> [level]  - напечатать карту уровня для сида
  rooms <seed> [level] - список комнат и их перекрытий
  arena                - напечатать арену босса
  scan <count>         - проверить сиды 1..count на недостижимые клетки`)
}
