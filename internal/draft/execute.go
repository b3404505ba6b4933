package draft

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/3JRock3/Ver-2-Draft/core"
	"github.com/3JRock3/Ver-2-Draft/internal/contract"
	"github.com/3JRock3/Ver-2-Draft/internal/outwriter"
	"github.com/3JRock3/Ver-2-Draft/internal/roster"
	"github.com/3JRock3/Ver-2-Draft/internal/session"
	"github.com/3JRock3/Ver-2-Draft/schema"
)

// ExecuteImport replaces the session roster with players parsed from a CSV
// file. Replacing the roster invalidates the pick log, so the draft state is
// cleared in the same save.
func ExecuteImport(cfg *contract.Config, mgr contract.StoreManager, csvPath string) error {
	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("cannot open roster file: %w", err)
	}
	defer func() { _ = f.Close() }()

	players, err := roster.ImportCSV(f)
	if err != nil {
		return err
	}
	// Surface structural problems now rather than on the first board pass
	if _, err := core.NewRoster(players); err != nil {
		return err
	}

	store := mgr.GetSessionStore()
	snap := session.LoadSnapshot(store, cfg.SessionKey)
	snap.Roster = players
	snap.Picks = nil
	snap.MyRoster = nil
	if err := session.SaveSnapshot(store, cfg.SessionKey, snap); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Printf("Imported %d players into session %q. Pick log cleared.\n", len(players), cfg.SessionKey)
	return nil
}

// ExecuteBoard runs one ranking pass over the session roster and writes the
// board in the configured output format.
func ExecuteBoard(cfg *contract.Config, mgr contract.StoreManager) error {
	st, err := LoadState(mgr.GetSessionStore(), cfg.SessionKey)
	if err != nil {
		return err
	}

	filter := core.BoardFilter{
		Pos:          cfg.Pos,
		Search:       cfg.Search,
		IncludeTaken: st.Snap.ShowTaken,
	}
	if cfg.ShowTakenSet {
		filter.IncludeTaken = cfg.ShowTaken
	}

	board := core.RankBoard(st.Roster, st.Weights, filter, st.Seq.Taken(), st.Seq.Mine())
	if cfg.Limit > 0 && cfg.Limit < len(board) {
		board = board[:cfg.Limit]
	}
	return outwriter.NewOutWriter().WriteBoard(board, cfg)
}

// ExecuteExport writes the current board as a roster CSV, including taken
// players so the file can be re-imported as a complete pool. Position and
// search filters still apply.
func ExecuteExport(cfg *contract.Config, mgr contract.StoreManager) error {
	st, err := LoadState(mgr.GetSessionStore(), cfg.SessionKey)
	if err != nil {
		return err
	}

	filter := core.BoardFilter{Pos: cfg.Pos, Search: cfg.Search, IncludeTaken: true}
	board := core.RankBoard(st.Roster, st.Weights, filter, st.Seq.Taken(), st.Seq.Mine())

	var w io.Writer = os.Stdout
	if cfg.OutputFile != "" {
		f, err := contract.SelectOutputFile(cfg.OutputFile)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		w = f
	}
	if err := roster.ExportCSV(w, board); err != nil {
		return err
	}
	if cfg.OutputFile != "" {
		fmt.Fprintf(os.Stderr, "💾 Exported %d players to %s\n", len(board), cfg.OutputFile)
	}
	return nil
}

// ExecutePick records one pick and persists the session.
func ExecutePick(cfg *contract.Config, mgr contract.StoreManager, name string, mine bool) error {
	st, err := LoadState(mgr.GetSessionStore(), cfg.SessionKey)
	if err != nil {
		return err
	}

	canonical, ok := st.Roster.ResolveName(name)
	if !ok {
		return fmt.Errorf("unknown player %q", name)
	}
	if !st.Seq.AddPick(canonical, mine) {
		return fmt.Errorf("player %q is already taken", canonical)
	}
	if err := SaveState(mgr.GetSessionStore(), cfg.SessionKey, st); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	log := st.Seq.Log()
	last := log[len(log)-1]
	round, slot := core.PickRoundSlot(last.Overall, st.Snap.League.Teams)
	player, _ := st.Roster.Lookup(canonical)
	suffix := ""
	if mine {
		suffix = " -> my roster"
	}
	fmt.Printf("Pick #%d (round %d, slot %d): %s (%s)%s\n", last.Overall, round, slot, canonical, player.Pos, suffix)
	return nil
}

// ExecuteUndo retracts the most recent pick and persists the session.
func ExecuteUndo(cfg *contract.Config, mgr contract.StoreManager) error {
	st, err := LoadState(mgr.GetSessionStore(), cfg.SessionKey)
	if err != nil {
		return err
	}

	log := st.Seq.Log()
	if !st.Seq.UndoPick() {
		return errors.New("pick log is empty, nothing to undo")
	}
	if err := SaveState(mgr.GetSessionStore(), cfg.SessionKey, st); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	last := log[len(log)-1]
	fmt.Printf("Undid pick #%d: %s\n", last.Overall, last.Name)
	return nil
}

// ExecuteReset clears the pick log. With archive enabled, the finished run
// is recorded in the archive store before the log is discarded.
func ExecuteReset(cfg *contract.Config, mgr contract.StoreManager, archive bool) error {
	st, err := LoadState(mgr.GetSessionStore(), cfg.SessionKey)
	if err != nil {
		return err
	}

	if archive {
		if err := archiveRun(mgr, st); err != nil {
			return err
		}
	}

	st.Seq.Reset()
	if err := SaveState(mgr.GetSessionStore(), cfg.SessionKey, st); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	fmt.Println("Draft reset. Pick log cleared.")
	return nil
}

// archiveRun records the current pick log as one finished draft run.
func archiveRun(mgr contract.StoreManager, st *State) error {
	arch := mgr.GetArchiveStore()
	if arch == nil {
		return errors.New("archive store is not configured, set --archive-backend")
	}

	log := st.Seq.Log()
	if len(log) == 0 {
		return errors.New("pick log is empty, nothing to archive")
	}

	runID, err := arch.BeginRun(time.Now().UTC(), st.Snap.League, st.Snap.Knobs)
	if err != nil {
		return fmt.Errorf("failed to archive run: %w", err)
	}
	for _, ev := range log {
		round, slot := core.PickRoundSlot(ev.Overall, st.Snap.League.Teams)
		player, _ := st.Roster.Lookup(ev.Name)
		if err := arch.RecordPick(runID, ev, round, slot, player.Pos); err != nil {
			return fmt.Errorf("failed to archive pick #%d: %w", ev.Overall, err)
		}
	}
	fmt.Printf("Archived run #%d with %d picks.\n", runID, len(log))
	return nil
}

// ExecutePicks writes the pick log with snake round and slot annotations.
func ExecutePicks(cfg *contract.Config, mgr contract.StoreManager) error {
	st, err := LoadState(mgr.GetSessionStore(), cfg.SessionKey)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WritePicks(st.Seq.Log(), st.Snap.League, cfg)
}

// ExecuteMyRoster writes my picks in the order they were made.
func ExecuteMyRoster(cfg *contract.Config, mgr contract.StoreManager) error {
	st, err := LoadState(mgr.GetSessionStore(), cfg.SessionKey)
	if err != nil {
		return err
	}

	names := st.Seq.MyRoster()
	mine := make([]schema.RankedPlayer, 0, len(names))
	for _, name := range names {
		player, ok := st.Roster.Lookup(name)
		if !ok {
			continue
		}
		mine = append(mine, schema.RankedPlayer{
			Player:       player,
			BaselineRank: st.Roster.BaselineRank(name),
		})
	}
	return outwriter.NewOutWriter().WriteMyRoster(mine, cfg)
}

// ExecuteUpcoming writes my next picks in the snake order with projections.
func ExecuteUpcoming(cfg *contract.Config, mgr contract.StoreManager, count int) error {
	st, err := LoadState(mgr.GetSessionStore(), cfg.SessionKey)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteUpcoming(st.Upcoming(count), cfg)
}

// ExecuteSummary writes the draft summary aggregates.
func ExecuteSummary(cfg *contract.Config, mgr contract.StoreManager) error {
	st, err := LoadState(mgr.GetSessionStore(), cfg.SessionKey)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteSummary(st.Summary(cfg.SummaryTopN, cfg.BestK), cfg)
}

// ExecuteWeights writes the raw sliders and the weight configuration derived
// from them. Works on a fresh session; no roster is required.
func ExecuteWeights(cfg *contract.Config, mgr contract.StoreManager) error {
	snap := session.LoadSnapshot(mgr.GetSessionStore(), cfg.SessionKey)
	return outwriter.NewOutWriter().WriteWeights(snap.Knobs, core.ComputeWeights(snap.Knobs), cfg)
}
