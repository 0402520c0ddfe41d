package usecase

import (
	"context"
	"time"

	"nexus-tube/domain/model"
	"nexus-tube/domain/repository"
	"nexus-tube/infrastructure/logger"
)

const downloadTimeout = 2 * time.Minute

type ILibraryUsecase interface {
	AddToHistory(video model.Video)
	DownloadVideo(video model.Video)
	WatchHistory() []model.Video
	DownloadedVideos() []model.Video
}

// AddToHistory moves video to the front of the watch history. Replaying the
// most recent entry is a no-op. The history is not capped.
func (s *Store) AddToHistory(video model.Video) {
	if video.ID == "" {
		return
	}
	_ = s.apply(func() ([]model.StoreEvent, error) {
		d := s.current()
		if len(d.WatchHistory) > 0 && d.WatchHistory[0].ID == video.ID {
			return nil, nil
		}
		d.WatchHistory = append([]model.Video{video}, withoutVideo(d.WatchHistory, video.ID)...)
		return []model.StoreEvent{s.event(model.EventHistoryChanged, video.ID, "")}, nil
	})
}

// DownloadVideo records video in the active user's downloads (newest first,
// once per id) and hands the media to the file saver in the background. The
// save never affects the recorded download.
func (s *Store) DownloadVideo(video model.Video) {
	if video.ID == "" {
		return
	}
	saver := s.saver
	_ = s.apply(func() ([]model.StoreEvent, error) {
		d := s.current()
		if !containsVideo(d.DownloadedVideos, video.ID) {
			d.DownloadedVideos = append([]model.Video{video}, d.DownloadedVideos...)
		}
		return []model.StoreEvent{s.event(model.EventDownloadAdded, video.ID, "Downloading: "+video.Title)}, nil
	})
	if saver != nil && video.VideoURL != "" {
		go saveDownload(saver, video)
	}
}

func saveDownload(saver repository.IFileSaver, video model.Video) {
	defer func() {
		if r := recover(); r != nil {
			logger.GetLogger().WithField("error", r).Error("Download save panicked")
		}
	}()
	ctx, cancel := context.WithTimeout(context.Background(), downloadTimeout)
	defer cancel()
	name := video.Title
	if name == "" {
		name = "video"
	}
	if err := saver.Save(ctx, video.VideoURL, name); err != nil {
		logger.GetLogger().WithField("error", err).WithField("videoId", video.ID).Warn("Download save failed")
		return
	}
	logger.GetLogger().WithFields(map[string]interface{}{"videoId": video.ID, "file": name}).Info("Download saved")
}

func (s *Store) WatchHistory() []model.Video {
	var out []model.Video
	s.read(func() { out = append([]model.Video{}, s.current().WatchHistory...) })
	return out
}

func (s *Store) DownloadedVideos() []model.Video {
	var out []model.Video
	s.read(func() { out = append([]model.Video{}, s.current().DownloadedVideos...) })
	return out
}
