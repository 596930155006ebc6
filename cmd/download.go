package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/brogergvhs/manga1000/internal/chapters"
	"github.com/brogergvhs/manga1000/internal/config"
	"github.com/brogergvhs/manga1000/internal/downloader"
	"github.com/brogergvhs/manga1000/internal/providers"
	"github.com/brogergvhs/manga1000/internal/ui"
	"github.com/brogergvhs/manga1000/internal/util"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var (
	// selection
	flagChapter string
	flagRange   string
	flagList    string
	flagPick    bool

	// runtime
	flagOutput         string
	flagImageWorkers   int
	flagChapterWorkers int
	flagKeepFolders    bool
	flagDryRun         bool
	flagSkipBroken     bool
)

func init() {
	downloadCmd := &cobra.Command{
		Use:   "download <manga-id>",
		Short: "Download manga chapters and produce CBZ files. Uses the defaults from the selected config, overwritten by CLI flags",
		Args:  cobra.ExactArgs(1),
		RunE:  runDownload,
	}

	// selection
	downloadCmd.Flags().StringVar(&flagChapter, "chapter", "", "download chapters by number, or by list index when no number matches (e.g. 5 or 28.5)")
	downloadCmd.Flags().StringVar(&flagRange, "range", "", "download chapters whose number is in a range (e.g. 5-12.5, 10- or -3)")
	downloadCmd.Flags().StringVar(&flagList, "list", "", "download a comma-separated list of chapter numbers or indices (e.g. 1,3,5.5)")
	downloadCmd.Flags().BoolVar(&flagPick, "pick", false, "choose a chapter interactively")

	// runtime
	downloadCmd.Flags().StringVar(&flagOutput, "output", "", "output folder for CBZ files")
	downloadCmd.Flags().IntVar(&flagImageWorkers, "image-workers", 0, "parallel image downloads per chapter")
	downloadCmd.Flags().IntVar(&flagChapterWorkers, "chapter-workers", 0, "parallel chapter downloads")
	downloadCmd.Flags().BoolVar(&flagKeepFolders, "keep-folders", false, "keep temporary folders")
	downloadCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "show what would be downloaded, don't download")
	downloadCmd.Flags().BoolVar(&flagSkipBroken, "skip-broken", false, "skip failed images instead of failing the whole chapter")

	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, config.Options{
		Output:         flagOutput,
		ImageWorkers:   flagImageWorkers,
		ChapterWorkers: flagChapterWorkers,
		KeepFolders:    flagKeepFolders,
		SkipBroken:     flagSkipBroken,
	})
	if err != nil {
		return err
	}

	cfg := s.cfg
	out := cmd.OutOrStdout()
	mangaID := args[0]

	if cfg.Debug {
		_, _ = fmt.Fprintf(out, "Config file: %s\n", s.cfgPath)
		cfg.Print(out)
		_, _ = fmt.Fprintln(out)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	manga, err := s.source.GetMangaDetails(ctx, mangaID)
	if err != nil {
		s.log.Warnf("No details for %s: %v\n", mangaID, err)
	}

	series := strings.Split(mangaID, " ")[0]
	if manga != nil && len(manga.Titles) > 0 {
		series = manga.Titles[0]
	}

	all, err := s.source.GetChapters(ctx, mangaID)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		return fmt.Errorf("no chapters found for %q", mangaID)
	}

	var picked []int
	if flagPick {
		i, err := pickChapter(all)
		if err != nil {
			return err
		}
		picked = []int{i}
	} else {
		if flagChapter == "" && flagRange == "" && flagList == "" {
			_, _ = fmt.Fprintf(out, "Found %d chapters on the site.\n\n", len(all))
		}
		picked = providers.Select(all, flagChapter, flagRange, flagList)
	}

	if len(picked) == 0 {
		if flagChapter != "" {
			return fmt.Errorf("chapter '%s' not found", flagChapter)
		}
		return fmt.Errorf("no chapters selected")
	}

	// Named against the whole list so chapters sharing a number keep
	// distinct files whichever of them are selected.
	named := chapters.Wrap(all, series)
	selected := make([]chapters.Chapter, len(picked))
	for i, j := range picked {
		selected[i] = named[j]
	}

	if flagDryRun {
		_, _ = fmt.Fprintf(out, "Dry-run: %d chapters selected.\n\n", len(selected))
		rows := make([][]string, len(selected))
		for i, ch := range selected {
			rows[i] = []string{fmt.Sprint(i + 1), ch.Label(), ch.OutputCBZ(), ch.ID}
		}
		return ui.PrintTable(out, []string{"#", "Chapter", "File", "URL"}, rows)
	}

	if err := os.MkdirAll(cfg.Output, 0755); err != nil {
		return fmt.Errorf("cannot create output folder: %w", err)
	}
	for _, dir := range util.CleanupUnfinishedTempFolders(cfg.Output) {
		s.log.Debugf("Removed leftover %s\n", dir)
	}
	util.SetupInterruptHandler(cfg.Output, cancel)
	s.log.Infof("Saving %d chapters to %s\n", len(selected), cfg.Output)

	pm := ui.NewProgressManager(cmd.ErrOrStderr())
	stats := &ui.Stats{}

	dl := downloader.New(s.client, cfg.SkipBroken, s.log)
	dl.Attempts = cfg.Retries

	job := chapterJob{
		session: s,
		dl:      dl,
		manga:   manga,
		series:  series,
		mangaID: mangaID,
		stats:   stats,
	}

	start := time.Now()
	sem := make(chan struct{}, max(1, cfg.ChapterWorkers))
	var wg sync.WaitGroup

	for _, ch := range selected {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			handle := pm.Register("Ch." + ch.Label())
			if err := job.run(ctx, ch, handle); err != nil {
				handle.Abort()
				stats.FailedChapter.Add(1)
				s.log.Errorf("Chapter %s failed: %v\n", ch.Label(), err)
				return
			}
			handle.MarkDone()
		}()
	}
	wg.Wait()
	pm.Wait()

	stats.Print(out, time.Since(start))

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if n := stats.FailedChapter.Load(); n > 0 {
		return fmt.Errorf("%d of %d chapters failed", n, len(selected))
	}

	_, _ = fmt.Fprintln(out, "\nAll done.")
	return nil
}

type chapterJob struct {
	*session
	dl      *downloader.Downloader
	manga   *providers.Manga
	series  string
	mangaID string
	stats   *ui.Stats
}

func (j chapterJob) run(ctx context.Context, ch chapters.Chapter, handle *ui.ProgressHandle) error {
	details, err := j.source.GetChapterDetails(ctx, j.mangaID, ch.ID)
	if err != nil {
		return err
	}
	if len(details.Pages) == 0 {
		return fmt.Errorf("no images for %s", ch.ID)
	}

	tmpFolder := filepath.Join(j.cfg.Output, ch.FolderName())
	cbzOut := ch.OutputCBZPath(j.cfg.Output)

	pages := downloader.ResolvePages(details.ID, details.Pages)
	files, bytes, err := j.dl.DownloadPages(ctx, pages, tmpFolder, j.referer(), j.cfg.ImageWorkers, handle)
	if err != nil {
		util.CleanupFolder(tmpFolder)
		return err
	}

	if err := util.CreateCBZ(files, cbzOut, j.comicInfo(ch, len(files))); err != nil {
		util.CleanupFolder(tmpFolder)
		return fmt.Errorf("CBZ: %w", err)
	}

	if !j.cfg.KeepFolders {
		util.CleanupFolder(tmpFolder)
	}

	j.stats.TotalChapters.Add(1)
	j.stats.TotalImages.Add(int64(len(files)))
	j.stats.TotalBytes.Add(bytes)

	return nil
}

func (j chapterJob) comicInfo(ch chapters.Chapter, pages int) *util.ComicInfo {
	info := &util.ComicInfo{
		Title:       fmt.Sprintf("%s %s", j.series, ch.Label()),
		Series:      j.series,
		Number:      ch.Label(),
		Web:         ch.ID,
		PageCount:   pages,
		LanguageISO: "ja",
		Manga:       "YesAndRightToLeft",
	}

	if j.manga != nil {
		info.Writer = j.manga.Author
		info.Summary = strings.TrimSpace(j.manga.Desc)

		var genres []string
		for _, section := range j.manga.Tags {
			for _, t := range section.Tags {
				genres = append(genres, t.Label)
			}
		}
		info.Genre = strings.Join(genres, ", ")
	}

	return info
}

func pickChapter(all []providers.Chapter) (int, error) {
	items := make([]string, len(all))
	for i, c := range all {
		items[i] = fmt.Sprintf("%3d) Ch.%s  %s", i+1, c.Label(), c.ID)
	}

	prompt := promptui.Select{
		Label:             "Select chapter",
		Items:             items,
		Size:              15,
		StartInSearchMode: false,
		Searcher: func(input string, index int) bool {
			return strings.Contains(strings.ToLower(items[index]), strings.ToLower(input))
		},
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return 0, fmt.Errorf("selection cancelled")
	}

	return idx, nil
}
