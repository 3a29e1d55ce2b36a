package snapstore

import (
	"fmt"

	"github.com/apiarylab/hivetrend/schema"
)

// PrintSnapshotStatus prints snapshot store status information.
func PrintSnapshotStatus(status schema.SnapshotStatus) {
	fmt.Printf("Snapshot Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Loads: %d\n", status.TotalLoads)
	if status.TotalLoads > 0 {
		fmt.Printf("Last Load ID: %d\n", status.LastLoadID)
		fmt.Printf("Last Load: %s\n", status.LastLoadTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Load: %s\n", status.OldestLoadTime.Format("2006-01-02 15:04:05"))
	}
	fmt.Println("Table Sizes:")
	for table, size := range status.TableSizes {
		fmt.Printf("  %s: %d rows\n", table, size)
	}
}
