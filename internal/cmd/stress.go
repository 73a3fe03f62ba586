package cmd

import (
	"fmt"
	"sync"

	"github.com/Iron-Ham/logsmith"
	"github.com/spf13/cobra"
)

var (
	stressWorkers int
	stressCount   int
)

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Concurrent emission with size rotation and auditing",
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()

		dir, err := demoLogDir()
		if err != nil {
			return err
		}

		logic, err := logsmith.NewRotationLogic(logsmith.RotationLogic{
			MaxBytes:    4 << 10,
			BackupCount: 5,
		})
		if err != nil {
			return err
		}

		log, err := logsmith.Get("stress", logsmith.TRACE)
		if err != nil {
			return err
		}
		if err := log.AddFile(dir, "stress.log", logsmith.NOTSET, nil, logic, false); err != nil {
			return err
		}
		if err := logsmith.StartAudit(dir, "audit.log", nil, nil); err != nil {
			return err
		}
		defer func() { _ = logsmith.StopAudit() }()

		var wg sync.WaitGroup
		for w := 0; w < stressWorkers; w++ {
			wg.Add(1)
			go func(worker int) {
				defer wg.Done()
				for i := 0; i < stressCount; i++ {
					log.Info("worker %d message %d", worker, i,
						logsmith.WithField("worker", worker))
				}
			}(w)
		}
		wg.Wait()

		fmt.Printf("wrote %d records under %s\n", stressWorkers*stressCount, dir)
		for _, target := range log.SinkTargets() {
			fmt.Println("  ", target)
		}
		return nil
	},
}

func init() {
	stressCmd.Flags().IntVar(&stressWorkers, "workers", 8, "concurrent emitting goroutines")
	stressCmd.Flags().IntVar(&stressCount, "count", 500, "records per goroutine")
	rootCmd.AddCommand(stressCmd)
}
