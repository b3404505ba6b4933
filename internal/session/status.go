package session

import (
	"fmt"

	"github.com/3JRock3/Ver-2-Draft/schema"
)

// PrintSessionStatus prints session store status information.
func PrintSessionStatus(status schema.SessionStatus, key string) {
	fmt.Printf("Session Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Session Key: %s\n", key)
	fmt.Printf("Has Snapshot: %t\n", status.HasSnapshot)
	if status.HasSnapshot {
		fmt.Printf("Last Saved: %s\n", status.LastSavedTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Snapshot Size: %d bytes\n", status.SnapshotBytes)
	}
}

// PrintArchiveStatus prints archive store status information.
func PrintArchiveStatus(status schema.ArchiveStatus) {
	fmt.Printf("Archive Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Runs: %d\n", status.TotalRuns)
	fmt.Printf("Total Picks: %d\n", status.TotalPicks)
	if status.TotalRuns > 0 {
		fmt.Printf("Last Run: %s\n", status.LastRunTime.Format("2006-01-02 15:04:05"))
	}
	if status.TableSizeBytes > 0 {
		fmt.Printf("Table Size: %d bytes\n", status.TableSizeBytes)
	}
}
