package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TWRT/ops-dashboard/internal/client/clickup"
)

// The snapshot walks team → space → folder → list and writes the hierarchy
// to a JSON file. It is a manual configuration aid for internal/config; the
// dashboard never reads the file at runtime.

type listMap map[string]string

type folderNode struct {
	ID    string  `json:"id"`
	Lists listMap `json:"lists"`
}

type spaceNode struct {
	ID      string                `json:"id"`
	Folders map[string]folderNode `json:"folders"`
	Lists   listMap               `json:"lists"`
}

type teamNode struct {
	ID     string               `json:"id"`
	Spaces map[string]spaceNode `json:"spaces"`
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Capture the workspace hierarchy into clickup_hierarchy.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		token := viper.GetString("token")
		if token == "" {
			return fmt.Errorf("CLICKUP_API_TOKEN não configurado")
		}
		c := clickup.NewClient(viper.GetString("base-url"), token)

		hierarchy, err := captureHierarchy(c)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(hierarchy, "", "  ")
		if err != nil {
			return err
		}
		path := "clickup_hierarchy.json"
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return err
		}
		fmt.Printf("✅ Hierarquia salva em %s\n", path)
		return nil
	},
}

func captureHierarchy(c *clickup.Client) (map[string]teamNode, error) {
	teams, err := c.GetWorkspaces()
	if err != nil {
		return nil, fmt.Errorf("get teams: %w", err)
	}

	hierarchy := make(map[string]teamNode)
	for _, team := range teams {
		fmt.Printf("Processing Team: %s (%s)\n", team.Name, team.Id)
		tn := teamNode{ID: team.Id, Spaces: make(map[string]spaceNode)}

		spaces, err := c.GetSpaces(team.Id)
		if err != nil {
			return nil, fmt.Errorf("get spaces for team %s: %w", team.Id, err)
		}
		for _, space := range spaces {
			fmt.Printf("  Processing Space: %s (%s)\n", space.Name, space.Id)
			sn := spaceNode{ID: space.Id, Folders: make(map[string]folderNode), Lists: make(listMap)}

			folders, err := c.GetFolders(space.Id)
			if err != nil {
				return nil, fmt.Errorf("get folders for space %s: %w", space.Id, err)
			}
			for _, folder := range folders {
				fn := folderNode{ID: folder.Id, Lists: make(listMap)}
				lists, err := c.GetFolderLists(folder.Id)
				if err != nil {
					return nil, fmt.Errorf("get lists for folder %s: %w", folder.Id, err)
				}
				for _, list := range lists {
					fmt.Printf("      Found List: %s (%s)\n", list.Name, list.Id)
					fn.Lists[list.Name] = list.Id
				}
				sn.Folders[folder.Name] = fn
			}

			spaceLists, err := c.GetSpaceLists(space.Id)
			if err != nil {
				return nil, fmt.Errorf("get folderless lists for space %s: %w", space.Id, err)
			}
			for _, list := range spaceLists {
				sn.Lists[list.Name] = list.Id
			}

			tn.Spaces[space.Name] = sn
		}
		hierarchy[team.Name] = tn
	}
	return hierarchy, nil
}
