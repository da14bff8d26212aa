// Package janitor runs the periodic membership consistency sweep. Cascade
// deletion clears membership rows transactionally, so under normal operation
// the sweep finds nothing; it exists to repair state left behind by manual
// database surgery or bugs in older deployments.
package janitor

import (
	"context"

	"github.com/robfig/cron/v3"
	"k8s.io/klog/v2"

	"github.com/teamtree-io/teamtree/dao"
	"github.com/teamtree-io/teamtree/pkg/metrics"
)

type Janitor struct {
	store *dao.Store
	cron  *cron.Cron
}

func New(store *dao.Store) *Janitor {
	return &Janitor{
		store: store,
		cron:  cron.New(),
	}
}

// Start schedules the sweep with the given cron spec and launches the
// scheduler. An empty spec disables the janitor.
func (j *Janitor) Start(spec string) error {
	if spec == "" {
		klog.Info("janitor disabled: no schedule configured")
		return nil
	}
	if _, err := j.cron.AddFunc(spec, j.sweep); err != nil {
		return err
	}
	j.cron.Start()
	klog.Infof("janitor scheduled: %s", spec)
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (j *Janitor) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
}

func (j *Janitor) sweep() {
	pruned, err := j.store.PruneOrphanedMemberships(context.Background())
	if err != nil {
		klog.Errorf("janitor sweep failed: %v", err)
		return
	}
	if pruned > 0 {
		metrics.JanitorPrunedMemberships.Add(float64(pruned))
		klog.Warningf("janitor pruned %d orphaned membership row(s)", pruned)
	}
}
