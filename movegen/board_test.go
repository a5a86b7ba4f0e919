package movegen

import "testing"

func TestAddRemovePieceKeepsBitboardsConsistent(t *testing.T) {
	pos := NewPosition(Standard)
	pos.addPiece(SquareE4, WhiteQueen)
	if pos.PieceAt(SquareE4) != WhiteQueen {
		t.Fatalf("PieceAt(e4) = %v, want WhiteQueen", pos.PieceAt(SquareE4))
	}
	if pos.PiecesOfType(White, PieceTypeQueen)&SquareBB(SquareE4) == 0 {
		t.Fatalf("queen bitboard missing e4")
	}
	if !pos.Validate() {
		t.Fatalf("Validate() = false after addPiece")
	}

	removed := pos.removePiece(SquareE4)
	if removed != WhiteQueen {
		t.Fatalf("removePiece returned %v, want WhiteQueen", removed)
	}
	if pos.PieceAt(SquareE4) != NoPiece {
		t.Fatalf("PieceAt(e4) = %v after removal, want NoPiece", pos.PieceAt(SquareE4))
	}
	if !pos.Validate() {
		t.Fatalf("Validate() = false after removePiece")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	pos, err := ParseFEN(StartFEN, Standard)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	clone := pos.Clone()
	clone.addPiece(SquareE4, WhiteQueen)
	if pos.PieceAt(SquareE4) != NoPiece {
		t.Fatalf("mutating the clone affected the original")
	}
}

func TestValidateFromStandardStart(t *testing.T) {
	pos, err := ParseFEN(StartFEN, Standard)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !pos.Validate() {
		t.Fatalf("Validate() = false for the standard start position")
	}
}
