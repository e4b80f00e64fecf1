package game

import (
	"errors"
	"testing"
	"time"

	"github.com/GPar6/gomoku/internal/domain"
)

func TestCreateSessionHumanBlackWaitsForMove(t *testing.T) {
	sm, _, snaps := newTestManager()
	conn := &fakeConn{}

	session, err := sm.CreateSession("p1", "alice", domain.Black, "easy", conn)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if session.Game.MoveCount != 0 {
		t.Fatalf("engine moved first when human is black: %d moves", session.Game.MoveCount)
	}
	starts := conn.ofType("game_start")
	if len(starts) != 1 || starts[0].YourRole != int(domain.Black) || starts[0].Opponent != domain.GetBotName("easy") {
		t.Fatalf("unexpected game_start: %+v", starts)
	}
	if _, ok := snaps.saved[session.GameID]; !ok {
		t.Fatalf("expected snapshot for new game")
	}
}

func TestCreateSessionHumanWhiteEngineOpensCenter(t *testing.T) {
	sm, _, _ := newTestManager()
	conn := &fakeConn{}

	session, err := sm.CreateSession("p1", "alice", domain.White, "hard", conn)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if got := session.Game.Board.Get(7, 7); got != domain.Black {
		t.Fatalf("expected engine stone at center, got %v", got)
	}
	if session.Game.CurrentRole != domain.White {
		t.Fatalf("expected human to move next")
	}
	if len(conn.ofType("move_made")) != 1 {
		t.Fatalf("expected one move_made message")
	}
}

func TestCreateSessionRejectsEmptyRole(t *testing.T) {
	sm, _, _ := newTestManager()
	if _, err := sm.CreateSession("p1", "alice", domain.Empty, "easy", nil); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestHandleMoveEngineReplies(t *testing.T) {
	sm, _, snaps := newTestManager()
	conn := &fakeConn{}
	session, _ := sm.CreateSession("p1", "alice", domain.Black, "medium", conn)

	if err := session.HandleMove("p1", domain.Coordinate{Row: 7, Col: 7}, conn); err != nil {
		t.Fatalf("HandleMove: %v", err)
	}
	if session.Game.MoveCount != 2 {
		t.Fatalf("expected human move and engine reply, got %d moves", session.Game.MoveCount)
	}
	reply, _ := session.Game.LastMove()
	if reply.Role != domain.White {
		t.Fatalf("expected engine reply as white, got %+v", reply)
	}
	if abs(reply.Row-7) > 1 || abs(reply.Col-7) > 1 {
		t.Fatalf("engine reply %+v not adjacent to the only stone", reply)
	}
	if session.Game.CurrentRole != domain.Black {
		t.Fatalf("expected turn back to human")
	}
	if snaps.saved[session.GameID].MoveCount != 2 {
		t.Fatalf("snapshot not updated: %+v", snaps.saved[session.GameID])
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestHandleMoveRejections(t *testing.T) {
	sm, _, _ := newTestManager()
	conn := &fakeConn{}
	session, _ := sm.CreateSession("p1", "alice", domain.White, "easy", conn)

	if err := session.HandleMove("p1", domain.Coordinate{Row: 7, Col: 7}, conn); !errors.Is(err, domain.ErrCellOccupied) {
		t.Fatalf("expected ErrCellOccupied, got %v", err)
	}
	if err := session.HandleMove("p1", domain.Coordinate{Row: 15, Col: 0}, conn); !errors.Is(err, domain.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if err := session.HandleMove("intruder", domain.Coordinate{Row: 0, Col: 0}, conn); err == nil {
		t.Fatalf("expected error for a player outside the game")
	}
	if session.Game.MoveCount != 1 {
		t.Fatalf("rejected moves changed the game: %d moves", session.Game.MoveCount)
	}
}

func TestHandleMoveHumanWins(t *testing.T) {
	sm, repo, snaps := newTestManager()
	conn := &fakeConn{}
	session, _ := sm.CreateSession("p1", "alice", domain.Black, "easy", conn)

	for col := 0; col < 4; col++ {
		session.Game.Board.Set(0, col, domain.Black)
		session.Game.Board.Set(5, col, domain.White)
	}
	session.Game.MoveCount = 8

	if err := session.HandleMove("p1", domain.Coordinate{Row: 0, Col: 4}, conn); err != nil {
		t.Fatalf("HandleMove: %v", err)
	}
	if session.Game.Status != domain.StatusWon || session.Game.Winner != domain.Black {
		t.Fatalf("expected black win, got %s/%v", session.Game.Status, session.Game.Winner)
	}
	if session.Game.MoveCount != 9 {
		t.Fatalf("engine moved after the game ended")
	}

	over := conn.ofType("game_over")
	if len(over) != 1 || over[0].Winner != "alice" || over[0].Reason != domain.ReasonFiveInRow {
		t.Fatalf("unexpected game_over: %+v", over)
	}

	sm.Wait()
	if len(repo.records) != 1 {
		t.Fatalf("expected one archived game, got %d", len(repo.records))
	}
	record := repo.records[0]
	if record.WinnerUsername != "alice" || record.Winner != domain.Black || record.TotalMoves != 9 {
		t.Fatalf("unexpected record: %+v", record)
	}
	if _, ok := snaps.saved[session.GameID]; ok {
		t.Fatalf("snapshot should be deleted once the game ends")
	}

	if err := session.HandleMove("p1", domain.Coordinate{Row: 10, Col: 10}, conn); !errors.Is(err, domain.ErrGameFinished) {
		t.Fatalf("expected ErrGameFinished, got %v", err)
	}
}

func TestHandleMoveFillingBoardIsDraw(t *testing.T) {
	sm, repo, _ := newTestManager()
	conn := &fakeConn{}
	session, _ := sm.CreateSession("p1", "alice", domain.Black, "easy", conn)

	// Alternating pairs of rows leave no line longer than two.
	board := session.Game.Board
	for r := 0; r < board.Size(); r++ {
		for c := 0; c < board.Size(); c++ {
			if r == 14 && c == 14 {
				continue
			}
			role := domain.White
			if (c+r/2)%2 == 1 {
				role = domain.Black
			}
			board.Set(r, c, role)
		}
	}
	session.Game.MoveCount = board.Size()*board.Size() - 1

	if err := session.HandleMove("p1", domain.Coordinate{Row: 14, Col: 14}, conn); err != nil {
		t.Fatalf("HandleMove: %v", err)
	}
	if session.Game.Status != domain.StatusDraw {
		t.Fatalf("expected draw, got %s", session.Game.Status)
	}

	sm.Wait()
	if len(repo.records) != 1 || repo.records[0].Reason != domain.ReasonDraw || repo.records[0].WinnerUsername != "" {
		t.Fatalf("unexpected records: %+v", repo.records)
	}
}

func TestAbandon(t *testing.T) {
	sm, repo, _ := newTestManager()
	conn := &fakeConn{}
	session, _ := sm.CreateSession("p1", "alice", domain.Black, "hard", conn)

	if err := session.Abandon("p1", conn); err != nil {
		t.Fatalf("Abandon: %v", err)
	}
	if session.Game.Winner != domain.White {
		t.Fatalf("expected engine to win on abandon")
	}
	over := conn.ofType("game_over")
	if len(over) != 1 || over[0].Reason != domain.ReasonAbandoned || over[0].Winner != domain.GetBotName("hard") {
		t.Fatalf("unexpected game_over: %+v", over)
	}

	// A second abandon is a no-op.
	if err := session.Abandon("p1", conn); err != nil {
		t.Fatalf("second Abandon: %v", err)
	}
	sm.Wait()
	if len(repo.records) != 1 {
		t.Fatalf("expected one archived game, got %d", len(repo.records))
	}
}

func TestSnapshot(t *testing.T) {
	sm, _, _ := newTestManager()
	session, _ := sm.CreateSession("p1", "alice", domain.White, "easy", nil)

	snap := session.Snapshot()
	if snap.GameID != session.GameID || snap.MoveCount != 1 || snap.CurrentTurn != domain.White {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.Board[7][7] != int(domain.Black) {
		t.Fatalf("snapshot board missing engine opening")
	}
	if snap.UpdatedAt.IsZero() || snap.UpdatedAt.After(time.Now()) {
		t.Fatalf("bad UpdatedAt %v", snap.UpdatedAt)
	}
}
