package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/coursekey/internal/idgen"
)

var hashCmd = &cobra.Command{
	Use:   "hash <input>",
	Short: "Print the 12-hex hash of an input string",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h := idgen.Hash12(args[0])
		withCode, _ := cmd.Flags().GetBool("code")
		if !withCode {
			fmt.Fprintln(cmd.OutOrStdout(), h)
			return nil
		}
		code, err := idgen.EncodeCourseCode(h)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", h, code)
		return nil
	},
}

var codeCmd = &cobra.Command{
	Use:   "code <course-name> <timestamp>",
	Short: "Print the course ID and join code for a course",
	Long:  "Timestamps use the canonical form 2006-01-02T15:04:05.000Z; any RFC 3339 time is accepted and normalized.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec := idgen.Spec{Kind: idgen.KindCourse, CourseName: args[0], Timestamp: args[1]}
		id, err := spec.ID()
		if err != nil {
			return err
		}
		code, err := spec.Code()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", id, code)
		return nil
	},
}

func init() {
	hashCmd.Flags().Bool("code", false, "Also print the join code derived from the hash")

	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(codeCmd)
}
