package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/gpt4thewin/europarl-dl/pkg/downloader"
	"github.com/gpt4thewin/europarl-dl/service/library"

	_ "github.com/gpt4thewin/europarl-dl/pkg/downloader/direct"
	_ "github.com/gpt4thewin/europarl-dl/pkg/ies/europa"
	_ "github.com/gpt4thewin/europarl-dl/pkg/ies/europarl"
)

func main() {
	dbpath := flag.String("db", "europarl-dl.sqlite3", "extraction history database")
	verbose := flag.Bool("v", false, "verbose db logging")
	download := flag.Bool("d", false, "download the best format after extraction")
	dir := flag.String("o", ".", "download directory")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: europarl-dl [flags] <url>")
	}
	url := flag.Arg(0)

	lib, err := library.NewLibrary(*dbpath, *verbose)
	if err != nil {
		log.Fatal(err)
	}
	defer lib.Close()

	entry, err := lib.Extract(url)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("id:      ", entry.MediaID)
	fmt.Println("title:   ", entry.Title)
	if entry.Description != "" {
		fmt.Println("desc:    ", entry.Description)
	}
	if entry.Duration > 0 {
		fmt.Println("duration:", entry.Duration, "s")
	}
	if entry.IsLive {
		fmt.Println("live:     yes")
	}
	for _, f := range entry.Formats {
		fmt.Printf("format:   %s lang=%s note=%s %s\n", f.URL, f.Language, f.Note, f.Ext)
	}
	for lang, subs := range entry.Subtitles {
		for _, s := range subs {
			fmt.Printf("subtitle: [%s] %s\n", lang, s.URL)
		}
	}

	if *download && len(entry.Formats) > 0 {
		d, err := downloader.GetByIE(entry.IE)
		if err != nil {
			log.Fatal(err)
		}
		err = d.Download(context.Background(), downloader.DownloadOptions{
			Format: entry.Formats[0],
			Dir:    *dir,
			Stem:   entry.Title,
		}, func(total, downloaded, speed int64, percent float64) {
			fmt.Printf("\r%6.2f%% %d/%d", percent, downloaded, total)
		})
		fmt.Println()
		if err != nil {
			log.Fatal(err)
		}
	}
}
