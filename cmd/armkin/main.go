// Command armkin is a small console front-end for the kinematics engine:
// it lists the bundled robots and runs forward/inverse kinematics and
// reachability queries against them.
package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/armkin/core"
	"github.com/katalvlaran/armkin/forward"
	"github.com/katalvlaran/armkin/inverse"
	"github.com/katalvlaran/armkin/robots"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

var (
	flagRobot string
	flagTrace bool
	flagStep  float64
	flagClamp bool
)

func main() {
	root := &cobra.Command{
		Use:           "armkin",
		Short:         "Serial-manipulator kinematics from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagRobot, "robot", "threelink", "bundled robot name (see 'armkin robots')")
	root.PersistentFlags().BoolVar(&flagTrace, "trace", false, "emit solver trace events")

	list := &cobra.Command{
		Use:   "robots",
		Short: "List the bundled robot descriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range robots.Names() {
				cfg, err := robots.Load(name)
				if err != nil {
					return err
				}
				fmt.Printf("%-10s %d joints, reach %.3f  %s\n",
					name, cfg.NumJoints(), cfg.WorkspaceRadius(), cfg.Description())
			}
			return nil
		},
	}

	fk := &cobra.Command{
		Use:   "fk <angles-deg>",
		Short: "Forward kinematics: joint angles (degrees, comma-separated) to pose",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := robots.Load(flagRobot)
			if err != nil {
				return err
			}
			angles, err := parseAngles(args[0])
			if err != nil {
				return err
			}
			if flagClamp {
				if angles, err = cfg.ClampToLimits(angles); err != nil {
					return err
				}
			}
			chain, err := forward.Chain(cfg, angles)
			if err != nil {
				return err
			}
			for i, t := range chain {
				p := t.Position()
				fmt.Printf("joint %d: (%.4f, %.4f, %.4f)\n", i+1, p.X, p.Y, p.Z)
			}
			pose := chain[len(chain)-1].Pose()
			fmt.Printf("end-effector: (%.4f, %.4f, %.4f)\n",
				pose.Position.X, pose.Position.Y, pose.Position.Z)
			return nil
		},
	}
	fk.Flags().BoolVar(&flagClamp, "clamp", false, "clamp angles into the stored joint limits first")

	ik := &cobra.Command{
		Use:   "ik <x,y,z>",
		Short: "Inverse kinematics: target position to joint angles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, target, opts, err := solverSetup(args[0])
			if err != nil {
				return err
			}
			res, err := inverse.Solve(cfg, target, opts)
			if err != nil {
				return err
			}
			if !res.Valid {
				fmt.Println("no solution")
				return nil
			}
			for i, sol := range res.Solutions {
				pose, err := forward.Solve(cfg, sol)
				if err != nil {
					return err
				}
				fmt.Printf("solution %d: [%s] error %.5f\n",
					i+1, formatAngles(sol), pose.Position.Dist(target))
			}
			return nil
		},
	}

	reach := &cobra.Command{
		Use:   "reach <x,y,z>",
		Short: "Report whether a target position is reachable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, target, opts, err := solverSetup(args[0])
			if err != nil {
				return err
			}
			ok, err := inverse.Reachable(cfg, target, opts)
			if err != nil {
				return err
			}
			fmt.Println(ok)
			return nil
		},
	}

	for _, c := range []*cobra.Command{ik, reach} {
		c.Flags().Float64Var(&flagStep, "step", 1.0, "sweep resolution in degrees")
	}
	root.AddCommand(list, fk, ik, reach)

	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("armkin failed")
		os.Exit(1)
	}
}

// solverSetup loads the selected robot, parses the target triple and
// assembles solver options from the flags.
func solverSetup(arg string) (*core.RobotConfig, core.Vec3, *inverse.Options, error) {
	cfg, err := robots.Load(flagRobot)
	if err != nil {
		return nil, core.Vec3{}, nil, err
	}
	parts, err := parseFloats(arg)
	if err != nil {
		return nil, core.Vec3{}, nil, err
	}
	if len(parts) != 3 {
		return nil, core.Vec3{}, nil, fmt.Errorf("target needs exactly 3 coordinates, got %d", len(parts))
	}
	opts := inverse.DefaultOptions()
	opts.Step = flagStep * math.Pi / 180
	if flagTrace {
		opts.Logger = logger.Level(zerolog.DebugLevel)
	}
	return cfg, core.Vec3{X: parts[0], Y: parts[1], Z: parts[2]}, &opts, nil
}

// parseAngles parses comma-separated degrees into radians.
func parseAngles(arg string) ([]float64, error) {
	deg, err := parseFloats(arg)
	if err != nil {
		return nil, err
	}
	rad := make([]float64, len(deg))
	for i, d := range deg {
		rad[i] = d * math.Pi / 180
	}
	return rad, nil
}

func parseFloats(arg string) ([]float64, error) {
	fields := strings.Split(arg, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// formatAngles renders a joint vector in degrees for operator eyes.
func formatAngles(rad []float64) string {
	parts := make([]string, len(rad))
	for i, r := range rad {
		parts[i] = fmt.Sprintf("%.2f°", r*180/math.Pi)
	}
	return strings.Join(parts, ", ")
}
