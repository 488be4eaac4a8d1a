//go:build !js

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/nodegraph"
)

func viewCmd(a *app) *cobra.Command {
	var (
		gf         graphFlags
		scriptPath string
		exitAfter  bool
		showFPS    bool
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the diagram in a window",
		Long: "Open the diagram in a window. Hover a node to highlight it and drag it with the\n" +
			"left mouse button. If the graph cannot be loaded the window opens empty.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			d := nodegraph.New(opts)

			g, err := a.loadGraph(cmd.Context(), gf)
			if err != nil {
				a.logger.Error("graph not loaded, opening an empty diagram", "err", err)
			} else if err := d.Load(g); err != nil {
				a.logger.Error("graph not laid out, opening an empty diagram", "err", err)
			}

			if scriptPath != "" {
				data, err := os.ReadFile(scriptPath)
				if err != nil {
					return fmt.Errorf("read script: %w", err)
				}
				runner, err := nodegraph.LoadTestScript(data)
				if err != nil {
					return err
				}
				d.SetTestRunner(runner)
			}

			return nodegraph.Run(d, nodegraph.RunConfig{
				Title:              a.cfg.Window.Title,
				Scale:              a.cfg.Window.Scale,
				ExitWhenScriptDone: exitAfter,
				ShowFPS:            showFPS,
			})
		},
	}

	gf.register(cmd)
	cmd.Flags().StringVar(&scriptPath, "script", "", "Replay the JSON test script in `FILE`")
	cmd.Flags().BoolVar(&exitAfter, "exit-after-script", false, "Close the window once the script and its screenshots are done")
	cmd.Flags().BoolVar(&showFPS, "fps", false, "Show an FPS counter")
	return cmd
}
