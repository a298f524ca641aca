package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/client/api"
)

var errLoginRequired = errors.New("please log in first")

func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errLoginRequired
	}

	tasks, err := a.api.ListTasks(ctx)
	if err != nil {
		return a.sessionLost(err)
	}
	a.tasks = tasks

	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks yet. Use: add <title>")
		return nil
	}
	for i, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Fprintf(a.out, "%3d. [%s] %s\n", i+1, mark, t.Title)
	}
	return nil
}

func (a *App) Add(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return errLoginRequired
	}
	title := strings.Join(args, " ")
	if title == "" {
		return errors.New("usage: add <title>")
	}

	task, err := a.api.CreateTask(ctx, title)
	if err != nil {
		return a.sessionLost(err)
	}
	a.tasks = append(a.tasks, *task)
	fmt.Fprintf(a.out, "Added: %s\n", task.Title)
	return nil
}

func (a *App) Done(ctx context.Context, args []string) error {
	id, err := a.resolveTask(args, "done")
	if err != nil {
		return err
	}

	task, err := a.api.CompleteTask(ctx, id)
	if err != nil {
		return a.sessionLost(err)
	}
	a.replaceTask(id, func(i int) { a.tasks[i].Completed = true })
	fmt.Fprintf(a.out, "Completed: %s\n", task.Title)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.resolveTask(args, "delete")
	if err != nil {
		return err
	}

	if err := a.api.DeleteTask(ctx, id); err != nil {
		return a.sessionLost(err)
	}
	a.replaceTask(id, func(i int) {
		a.tasks = append(a.tasks[:i], a.tasks[i+1:]...)
	})
	fmt.Fprintln(a.out, "Deleted")
	return nil
}

// resolveTask turns "<n>" (position in the last listing) or a raw id into a
// task id.
func (a *App) resolveTask(args []string, cmd string) (string, error) {
	if !a.isLoggedIn() {
		return "", errLoginRequired
	}
	if len(args) != 1 {
		return "", fmt.Errorf("usage: %s <n|id>", cmd)
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return args[0], nil
	}
	if n < 1 || n > len(a.tasks) {
		return "", fmt.Errorf("no task #%d, run 'list' to see your tasks", n)
	}
	return a.tasks[n-1].ID, nil
}

func (a *App) replaceTask(id string, fn func(i int)) {
	for i := range a.tasks {
		if a.tasks[i].ID == id {
			fn(i)
			return
		}
	}
}

var _ apiClient = (*api.Client)(nil)
