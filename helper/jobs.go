package helper

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"club_cinema/config"
	"club_cinema/constants"
	"club_cinema/database"
	"club_cinema/model"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var (
	sweepScheduler  *cron.Cron
	digestScheduler gocron.Scheduler
)

// StartUploadSweep removes poster files under UPLOAD_DIR that no movie row
// references anymore, e.g. after an admin deletes a movie. Runs hourly;
// files younger than an hour are left alone so an in-flight upload is never
// swept.
func StartUploadSweep() {
	sweepScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := sweepScheduler.AddFunc("@hourly", sweepOrphanedUploads)
	if err != nil {
		log.Printf("upload sweep scheduler error: %v", err)
		return
	}

	sweepScheduler.Start()
	log.Println("upload sweep scheduler started (hourly)")
}

func StopUploadSweep() {
	if sweepScheduler != nil {
		sweepScheduler.Stop()
	}
}

func sweepOrphanedUploads() {
	dir := config.Config("UPLOAD_DIR")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var posters []string
	database.DB.Model(&model.Movie{}).Where("poster LIKE ?", "/uploads/%").Pluck("poster", &posters)
	referenced := make(map[string]bool, len(posters))
	for _, p := range posters {
		referenced[strings.TrimPrefix(p, "/uploads/")] = true
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}
		info, err := entry.Info()
		if err != nil || time.Since(info.ModTime()) < time.Hour {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err == nil {
			removed++
		}
	}

	if removed > 0 {
		log.Printf("removed %d orphaned poster file(s)", removed)
	}
}

// StartDigestScheduler mails the pending-reservation summary every morning
// shortly after midnight.
func StartDigestScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("KST", 9*3600)),
	)
	if err != nil {
		log.Printf("digest scheduler error: %v", err)
		return
	}

	digestScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(runPendingDigest),
	)
	if err != nil {
		log.Printf("digest scheduler error: %v", err)
		return
	}

	s.Start()
	log.Println("pending digest scheduler started (00:05 KST)")
}

func StopDigestScheduler() {
	if digestScheduler != nil {
		_ = digestScheduler.Shutdown()
	}
}

func runPendingDigest() {
	var pending []model.Ticket
	err := database.DB.
		Where("status = ?", constants.StatusPending).
		Order("created_at ASC").
		Find(&pending).Error
	if err != nil {
		log.Printf("pending digest query failed: %v", err)
		return
	}

	SendPendingDigest(pending)
}
