package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/mkim-ops/ec2detail/internal/version"
	"github.com/mkim-ops/ec2detail/pkg/aws"
	"github.com/mkim-ops/ec2detail/pkg/enrich"
	"github.com/mkim-ops/ec2detail/pkg/formatter"
	"github.com/mkim-ops/ec2detail/pkg/utils"
)

var (
	region      string
	outputPath  string
	humanOutput bool
	showVersion bool
)

// startLookupSpinner creates and starts a spinner while the remote calls
// are in flight
func startLookupSpinner(name string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[9], 200*time.Millisecond)
	s.Suffix = fmt.Sprintf(" Looking up EC2 instances named %q ...", name)
	s.Start()
	return s
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "ec2detail <server-name>",
		Short: "Look up EC2 instance details by Name tag",
		Long: `ec2detail looks up EC2 instances by their Name tag, enriches them with
attached EBS volume details, and writes a JSON report or prints a
human-readable summary.

Read-only credentials are sufficient; only DescribeInstances and
DescribeVolumes are called.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Println(version.Get())
				return nil
			}

			if len(args) == 0 {
				return cmd.Help()
			}

			if region == "" {
				region = utils.GetDefaultRegion()
			}
			if !utils.IsValidRegion(region) {
				return fmt.Errorf("unknown region %q", region)
			}

			return run(args[0])
		},
	}

	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
	rootCmd.Flags().StringVarP(&region, "region", "r", "",
		fmt.Sprintf("AWS region (default: %s)", utils.GetDefaultRegion()))
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Output JSON file (default: output/<server-name>_details.json)")
	rootCmd.Flags().BoolVar(&humanOutput, "human", false, "Human-readable output instead of JSON")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// run drives the lookup pipeline: resolve instances, fetch volume
// metadata, merge, then emit the selected report format.
func run(name string) error {
	fmt.Printf("Searching for EC2 instance: %s\n", name)
	fmt.Printf("Region: %s\n", region)

	client, err := aws.NewEC2Client(region)
	if err != nil {
		return err
	}

	ctx := context.TODO()
	s := startLookupSpinner(name)

	instances, err := client.FindInstancesByName(ctx, name)
	if err != nil {
		s.Stop()
		return err
	}

	if len(instances) == 0 {
		s.FinalMSG = fmt.Sprintf("No EC2 instances found with name: %s\n", name)
		s.Stop()
		return nil
	}

	// Volume IDs are only known once the instances are resolved, so the
	// two remote calls stay sequential.
	volumeIDs := enrich.CollectVolumeIDs(instances)
	volumes := client.GetVolumeDetails(ctx, volumeIDs)

	s.FinalMSG = fmt.Sprintf("✓ [%d instance(s) found] Lookup completed\n", len(instances))
	s.Stop()

	merged := enrich.Merge(instances, volumes)

	if humanOutput {
		if len(merged) > 1 {
			fmt.Printf("Found %d instances with name: %s\n", len(merged), name)
			fmt.Println("Showing details for all instances:")
		}
		formatter.FormatInstancesText(os.Stdout, merged)
		return nil
	}

	path := outputPath
	if path == "" {
		path = formatter.DefaultOutputPath(name)
	}

	result := formatter.BuildResult(name, region, merged)
	if err := formatter.WriteResultFile(path, result); err != nil {
		return err
	}

	fmt.Printf("EC2 details written to: %s\n", path)
	fmt.Printf("Found %d instance(s)\n", len(merged))
	for i, instance := range merged {
		fmt.Printf("  Instance %d: %s (%s)\n", i+1, instance.InstanceID, instance.State)
	}

	return nil
}
