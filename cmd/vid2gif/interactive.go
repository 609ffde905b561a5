package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"vid2gif/internal/config"
	"vid2gif/internal/convert"
	"vid2gif/internal/scan"
)

// promptSession walks the user through a conversion when no input was given
// on the command line. Every prompt shows its default; an empty answer keeps
// it.
type promptSession struct {
	in  io.Reader
	out io.Writer

	reader *bufio.Reader
}

func (s *promptSession) run(cfg *config.Config, params jobParams, opts *convertOptions) ([]convert.Job, error) {
	s.reader = bufio.NewReader(s.in)

	fmt.Fprintln(s.out, "vid2gif interactive mode")
	fmt.Fprintln(s.out)

	videos, err := s.collectInputs(cfg, opts)
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, nil
	}

	outputDir, err := s.promptOutputDir(opts.output)
	if err != nil {
		return nil, err
	}

	params, err = s.promptParams(params)
	if err != nil {
		return nil, err
	}

	jobs := make([]convert.Job, 0, len(videos))
	for _, video := range videos {
		output := convert.DefaultOutputPath(video)
		if outputDir != "" {
			output = filepath.Join(outputDir, gifName(video))
		}
		jobs = append(jobs, newJob(video, output, params))
	}

	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "About to convert %d video(s): width=%s fps=%d quality=%d speed=%s loop=%t\n",
		len(jobs), widthLabel(params.width), params.fps, params.quality, formatSpeed(params.speed), params.loop)
	for _, job := range jobs {
		fmt.Fprintf(s.out, "  %s -> %s\n", job.InputPath, job.OutputPath)
	}
	proceed, err := s.promptYesNo("Proceed?", true)
	if err != nil {
		return nil, err
	}
	if !proceed {
		return nil, nil
	}
	return jobs, nil
}

func (s *promptSession) collectInputs(cfg *config.Config, opts *convertOptions) ([]string, error) {
	for {
		fmt.Fprintln(s.out, "  1) Convert a single video file")
		fmt.Fprintln(s.out, "  2) Convert videos in a directory")
		fmt.Fprintln(s.out, "  3) Convert videos listed in a batch file")
		choice, err := s.promptString("Choose an option", "1")
		if err != nil {
			return nil, err
		}
		switch strings.TrimSpace(choice) {
		case "1":
			return s.collectSingleFile(cfg)
		case "2":
			return s.collectDirectory(cfg, opts.recursive)
		case "3":
			return s.collectBatch(cfg)
		default:
			fmt.Fprintln(s.out, "Please enter 1, 2, or 3.")
		}
	}
}

func (s *promptSession) collectSingleFile(cfg *config.Config) ([]string, error) {
	for {
		path, err := s.promptString("Video file path", "")
		if err != nil {
			return nil, err
		}
		path = strings.TrimSpace(path)
		if path == "" {
			fmt.Fprintln(s.out, "A file path is required.")
			continue
		}
		info, statErr := os.Stat(path)
		if statErr != nil || info.IsDir() {
			fmt.Fprintf(s.out, "Not a file: %s\n", path)
			continue
		}
		if !scan.IsVideoFile(path, cfg.Scan.VideoExtensions) {
			fmt.Fprintf(s.out, "Not a recognized video extension: %s\n", filepath.Ext(path))
			continue
		}
		return []string{path}, nil
	}
}

func (s *promptSession) collectDirectory(cfg *config.Config, recursiveDefault bool) ([]string, error) {
	var dir string
	for {
		answer, err := s.promptString("Directory path", "")
		if err != nil {
			return nil, err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			fmt.Fprintln(s.out, "A directory path is required.")
			continue
		}
		info, statErr := os.Stat(answer)
		if statErr != nil || !info.IsDir() {
			fmt.Fprintf(s.out, "Not a directory: %s\n", answer)
			continue
		}
		dir = answer
		break
	}

	recursive, err := s.promptYesNo("Include subdirectories?", recursiveDefault)
	if err != nil {
		return nil, err
	}

	videos, err := scan.CollectVideos(dir, cfg.Scan.VideoExtensions, recursive)
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		fmt.Fprintf(s.out, "No video files found in %s.\n", dir)
		return nil, nil
	}

	fmt.Fprintf(s.out, "Found %d video(s):\n", len(videos))
	for i, video := range videos {
		fmt.Fprintf(s.out, "  %d) %s\n", i+1, video)
	}
	return s.promptSelection(videos)
}

func (s *promptSession) collectBatch(cfg *config.Config) ([]string, error) {
	for {
		path, err := s.promptString("Batch file path", "")
		if err != nil {
			return nil, err
		}
		path = strings.TrimSpace(path)
		if path == "" {
			fmt.Fprintln(s.out, "A batch file path is required.")
			continue
		}
		entries, readErr := scan.ReadBatchList(path)
		if readErr != nil {
			fmt.Fprintln(s.out, readErr.Error())
			continue
		}
		var videos []string
		for _, entry := range entries {
			if _, statErr := os.Stat(entry); statErr != nil {
				fmt.Fprintf(s.out, "Skipping missing file: %s\n", entry)
				continue
			}
			if !scan.IsVideoFile(entry, cfg.Scan.VideoExtensions) {
				fmt.Fprintf(s.out, "Skipping non-video file: %s\n", entry)
				continue
			}
			videos = append(videos, entry)
		}
		if len(videos) == 0 {
			fmt.Fprintf(s.out, "No usable videos listed in %s.\n", path)
			return nil, nil
		}
		return videos, nil
	}
}

// promptSelection narrows a numbered list of videos: "all" keeps everything,
// otherwise a comma-separated list of indices picks a subset.
func (s *promptSession) promptSelection(videos []string) ([]string, error) {
	for {
		answer, err := s.promptString(`Select videos (e.g. "1,3" or "all")`, "all")
		if err != nil {
			return nil, err
		}
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer == "" || answer == "all" {
			return videos, nil
		}

		var selected []string
		valid := true
		for _, token := range strings.Split(answer, ",") {
			token = strings.TrimSpace(token)
			index, convErr := strconv.Atoi(token)
			if convErr != nil || index < 1 || index > len(videos) {
				fmt.Fprintf(s.out, "Invalid selection: %s\n", token)
				valid = false
				break
			}
			selected = append(selected, videos[index-1])
		}
		if valid {
			return selected, nil
		}
	}
}

func (s *promptSession) promptOutputDir(initial string) (string, error) {
	for {
		dir, err := s.promptString("Output directory (empty keeps GIFs next to their videos)", initial)
		if err != nil {
			return "", err
		}
		dir = strings.TrimSpace(dir)
		if dir == "" {
			return "", nil
		}
		info, statErr := os.Stat(dir)
		if statErr == nil {
			if info.IsDir() {
				return dir, nil
			}
			fmt.Fprintf(s.out, "Not a directory: %s\n", dir)
			continue
		}
		create, err := s.promptYesNo(fmt.Sprintf("%s does not exist. Create it?", dir), true)
		if err != nil {
			return "", err
		}
		if !create {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(s.out, "Could not create directory: %v\n", err)
			continue
		}
		return dir, nil
	}
}

func (s *promptSession) promptParams(params jobParams) (jobParams, error) {
	width, err := s.promptInt("Width in pixels (0 keeps source width)", params.width, func(v int) bool { return v >= 0 })
	if err != nil {
		return params, err
	}
	params.width = width

	fps, err := s.promptInt("Frames per second", params.fps, func(v int) bool { return v > 0 })
	if err != nil {
		return params, err
	}
	params.fps = fps

	quality, err := s.promptInt("Quality (1-100)", params.quality, func(v int) bool { return v >= 1 && v <= 100 })
	if err != nil {
		return params, err
	}
	params.quality = quality

	speed, err := s.promptFloat("Speed multiplier", params.speed, func(v float64) bool { return v > 0 })
	if err != nil {
		return params, err
	}
	params.speed = speed

	loop, err := s.promptYesNo("Loop forever?", params.loop)
	if err != nil {
		return params, err
	}
	params.loop = loop

	return params, nil
}

func (s *promptSession) promptString(label, fallback string) (string, error) {
	if fallback != "" {
		fmt.Fprintf(s.out, "%s [%s]: ", label, fallback)
	} else {
		fmt.Fprintf(s.out, "%s: ", label)
	}
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		// A final line without a trailing newline still counts.
		if strings.TrimSpace(line) == "" {
			return "", errors.New("input closed")
		}
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback, nil
	}
	return line, nil
}

func (s *promptSession) promptInt(label string, fallback int, accept func(int) bool) (int, error) {
	for {
		answer, err := s.promptString(label, strconv.Itoa(fallback))
		if err != nil {
			return 0, err
		}
		value, convErr := strconv.Atoi(strings.TrimSpace(answer))
		if convErr != nil || !accept(value) {
			fmt.Fprintf(s.out, "Invalid value: %s\n", answer)
			continue
		}
		return value, nil
	}
}

func (s *promptSession) promptFloat(label string, fallback float64, accept func(float64) bool) (float64, error) {
	for {
		answer, err := s.promptString(label, formatSpeed(fallback))
		if err != nil {
			return 0, err
		}
		value, convErr := strconv.ParseFloat(strings.TrimSpace(answer), 64)
		if convErr != nil || !accept(value) {
			fmt.Fprintf(s.out, "Invalid value: %s\n", answer)
			continue
		}
		return value, nil
	}
}

func (s *promptSession) promptYesNo(label string, fallback bool) (bool, error) {
	hint := "y/N"
	if fallback {
		hint = "Y/n"
	}
	for {
		answer, err := s.promptString(fmt.Sprintf("%s [%s]", label, hint), "")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "":
			return fallback, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(s.out, "Please answer y or n.")
		}
	}
}

func widthLabel(width int) string {
	if width <= 0 {
		return "source"
	}
	return strconv.Itoa(width)
}

func formatSpeed(speed float64) string {
	return strconv.FormatFloat(speed, 'f', -1, 64)
}
