package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tpb/internal/apperr"
	"tpb/internal/category"
	"tpb/internal/config"
	"tpb/internal/downloader"
	"tpb/internal/fetch"
	"tpb/internal/logger"
	"tpb/internal/search"
	"tpb/internal/utils"
	"tpb/pkg/models"
)

func (a *app) newService(cmd *cobra.Command) *search.Service {
	var fetchOpts []fetch.Option
	if a.transport != nil {
		fetchOpts = append(fetchOpts, fetch.WithTransport(a.transport))
	}

	statusURL, _ := cmd.Flags().GetString("status-url")
	opts := []search.Option{search.WithStatusURL(statusURL)}
	if logger.IsDebugMode() && a.dumpDir != "" {
		opts = append(opts, search.WithPageDump(a.dumpDir))
	}
	return search.NewService(fetch.NewFetcher(fetchOpts...), opts...)
}

// buildQuery collects the mirror, category and limit shared by search and download.
func buildQuery(cmd *cobra.Command, args []string) (search.Query, error) {
	term := utils.JoinTerm(args)
	if term == "" {
		return search.Query{}, apperr.Usage("search", errors.New("empty search term"))
	}

	flagMirror, _ := cmd.Flags().GetString("mirror")
	mirror, err := config.ResolveMirror(flagMirror)
	if err != nil {
		return search.Query{}, err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	if limit < 0 {
		return search.Query{}, apperr.Usage("search", fmt.Errorf("invalid limit %d", limit))
	}

	q := search.Query{Mirror: mirror, Term: term, Limit: limit}

	categoryFlag, _ := cmd.Flags().GetString("category")
	if categoryFlag != "" {
		categories, err := category.Load()
		if err != nil {
			return search.Query{}, err
		}
		c, err := category.Resolve(categories, categoryFlag)
		if err != nil {
			return search.Query{}, err
		}
		logger.Debug("Using category %d (%s)", c.ID, c.Name)
		q.Category = c.ID
	}
	return q, nil
}

func (a *app) runRoot(cmd *cobra.Command, args []string) error {
	listCategories, _ := cmd.Flags().GetBool("list-categories")
	if !listCategories {
		return cmd.Help()
	}

	categories, err := category.Load()
	if err != nil {
		return err
	}
	category.Print(cmd.OutOrStdout(), categories)
	return nil
}

func (a *app) runSearch(cmd *cobra.Command, args []string) error {
	q, err := buildQuery(cmd, args)
	if err != nil {
		return err
	}

	results, err := a.newService(cmd).Search(cmd.Context(), q)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No results found.")
		return nil
	}
	for _, result := range results {
		printResult(cmd.OutOrStdout(), result)
	}
	return nil
}

func (a *app) runDownload(cmd *cobra.Command, args []string) error {
	q, err := buildQuery(cmd, args)
	if err != nil {
		return err
	}

	top, err := a.newService(cmd).Top(cmd.Context(), q)
	if err != nil {
		return err
	}
	logger.Info("Downloading %s (%s, %d SE/%d LE)", top.Title, top.Size, top.Seeders, top.Leechers)

	program, _ := cmd.Flags().GetString("downloader")
	d := downloader.New(program, a.runner)
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", d.Program(), top.Link)
	return d.Download(cmd.Context(), top.Link)
}

func (a *app) runConfigure(cmd *cobra.Command, args []string) error {
	mirror, _ := cmd.Flags().GetString("mirror")
	if mirror == "" {
		return apperr.Usage("configure", errors.New("--mirror is required"))
	}

	logger.Debug("Configuring %s with %s mirror", config.AppName, mirror)
	return config.SaveConfig(&models.Config{Mirror: mirror})
}

func (a *app) runShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return apperr.Config("show", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func (a *app) runStatus(cmd *cobra.Command, args []string) error {
	lastUpdated, mirrors, err := a.newService(cmd).Status(cmd.Context())
	if err != nil {
		return err
	}

	if lastUpdated != "" {
		fmt.Fprintln(cmd.OutOrStdout(), lastUpdated)
	}
	for _, mirror := range mirrors {
		printMirror(cmd.OutOrStdout(), mirror)
	}
	return nil
}
