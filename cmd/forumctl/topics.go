package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/coolfrog-dev/coolfrog/internal/domain"
)

var topicsFamily string

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Inspect topics",
}

var topicsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the topics of a family",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, storage, err := openStorage()
		if err != nil {
			return err
		}
		defer storage.Cleanup()

		family, ok := findFamily(cfg.Public.Families, topicsFamily)
		if !ok {
			return fmt.Errorf("unknown family %q", topicsFamily)
		}

		topics, err := storage.Topics(cmd.Context(), family.Name)
		if err != nil {
			return err
		}
		if len(topics) == 0 {
			fmt.Println(color.YellowString("No topics in %s", family.Name))
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetAutoWrapText(false)
		header := []string{"#", "Id", "Title", "Owner", "Created"}
		if family.IsMeetup() {
			header = append(header, "Meeting", "When")
		}
		table.SetHeader(header)

		for i, t := range topics {
			row := []string{
				strconv.Itoa(i + 1),
				t.Id,
				t.Title,
				t.Username,
				t.CreatedAt.UTC().Format("2006-01-02 15:04"),
			}
			if family.IsMeetup() {
				when := ""
				if t.DateTime != nil {
					when = t.DateTime.UTC().Format("2006-01-02 15:04")
				}
				row = append(row, t.MeetingType, when)
			}
			table.Append(row)
		}
		table.Render()
		return nil
	},
}

func findFamily(families []domain.Family, name string) (domain.Family, bool) {
	for _, f := range families {
		if f.Name == name {
			return f, true
		}
	}
	return domain.Family{}, false
}

func init() {
	topicsListCmd.Flags().StringVar(&topicsFamily, "family", "forums", "family to list")
	topicsCmd.AddCommand(topicsListCmd)
	RootCmd.AddCommand(topicsCmd)
}
