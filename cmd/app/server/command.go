package server

import (
	"os"

	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "start",
		Usage: "load the dataset and serve the dashboard API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "listen address, overrides ATTRITION_SERVICE_ADDRESS",
			},
			&cli.StringFlag{
				Name:  "dataset",
				Usage: "dataset path or s3://bucket/key, overrides ATTRITION_DATASET_URI",
			},
		},
		Before: func(c *cli.Context) error {
			// flags win over the environment and .env, which godotenv never overrides
			for flag, env := range map[string]string{
				"address": "ATTRITION_SERVICE_ADDRESS",
				"dataset": "ATTRITION_DATASET_URI",
			} {
				if c.IsSet(flag) {
					if err := os.Setenv(env, c.String(flag)); err != nil {
						return err
					}
				}
			}
			return nil
		},
		Action: func(c *cli.Context) error {
			Run()
			return nil
		},
	}
}
