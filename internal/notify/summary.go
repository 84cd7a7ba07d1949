package notify

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"RoomAllocator/internal/allocator"
	"RoomAllocator/internal/config"
)

type SummaryNotifier struct {
	mailer *config.MailerService
}

func NewSummaryNotifier(mailer *config.MailerService) *SummaryNotifier {
	return &SummaryNotifier{mailer: mailer}
}

// NotifyRunComplete emails a plaintext satisfaction/unallocated-rate
// summary per strategy to OPS_EMAIL. Failures are logged, not returned:
// the email is a side effect of a successful simulation, not its point.
func (n *SummaryNotifier) NotifyRunComplete(ctx context.Context, averages map[string]allocator.AllocationStatistics) {
	to := os.Getenv("OPS_EMAIL")
	if to == "" {
		log.Println("OPS_EMAIL not set, skipping simulation summary email")
		return
	}

	names := make([]string, 0, len(averages))
	for name := range averages {
		names = append(names, name)
	}
	sort.Strings(names)

	body := "Simulation complete.\n\n"
	for _, name := range names {
		stats := averages[name]
		body += fmt.Sprintf("%s: satisfaction=%.2f unallocated=%.2f firstChoice=%.2f steps=%d\n",
			name, stats.SatisfactionRate, stats.UnallocatedRate, stats.FirstChoiceRate, stats.NumSteps)
	}

	if err := n.mailer.SendEmail(to, "Room allocation simulation complete", body); err != nil {
		log.Println("failed to send simulation summary email:", err)
	}
}
