package main

import (
	"flag"
	"fmt"
	"log"

	"xiangqi/internal/tui"
	"xiangqi/internal/xiangqi"
)

func main() {
	fen := flag.String("fen", "", "position to inspect, empty for the standard opening")
	flag.Parse()

	b, side := xiangqi.NewBoard(), xiangqi.Red
	if *fen != "" {
		var err error
		b, side, err = xiangqi.DecodeBoard(*fen)
		if err != nil {
			log.Fatal(err)
		}
	}

	fmt.Print(tui.RenderBoard(b, nil, false))
	fmt.Println("FEN:", b.Encode(side))
	fmt.Println("Side to move:", side)
	fmt.Println("In check:", b.InCheck(side), "checkers:", b.Checkers(side))
	fmt.Println("Generals facing:", b.GeneralsFacing())
	for _, sd := range []xiangqi.Side{xiangqi.Red, xiangqi.Black} {
		fmt.Printf("%v pieces:\n", sd)
		for _, sq := range b.Squares(sd) {
			id := b.PieceAt(sq)
			pc := b.Piece(id)
			fmt.Printf("  #%-2d %c %-8v %v %v\n", id, pc.Letter(), pc.Kind, sq, pc.Movement)
		}
	}
	moves := b.LegalMoves(side)
	fmt.Println("Legal moves:", len(moves))
	fmt.Println("Outcome:", b.Evaluate(side))
}
