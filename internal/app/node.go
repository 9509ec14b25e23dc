package app

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// NodeSorter is one criterion by which the node table can be ordered.
type NodeSorter string

const (
	SortByRelativePath  NodeSorter = "by_relative_path"
	SortByIRelativePath NodeSorter = "by_irelative_path"
	SortByExtension     NodeSorter = "by_extension"
	SortByIsDir         NodeSorter = "by_is_dir"
	SortByIsFile        NodeSorter = "by_is_file"
	SortByIsSymlink     NodeSorter = "by_is_symlink"
	SortByIsBroken      NodeSorter = "by_is_broken"
	SortByIsReadonly    NodeSorter = "by_is_readonly"
	SortByMimeEssence   NodeSorter = "by_mime_essence"
	SortBySize          NodeSorter = "by_size"
)

var nodeSorters = map[NodeSorter]bool{
	SortByRelativePath: true, SortByIRelativePath: true,
	SortByExtension: true, SortByIsDir: true, SortByIsFile: true,
	SortByIsSymlink: true, SortByIsBroken: true, SortByIsReadonly: true,
	SortByMimeEssence: true, SortBySize: true,
}

// UnmarshalYAML validates membership in the closed sorter set.
func (s *NodeSorter) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	if !nodeSorters[NodeSorter(name)] {
		return fmt.Errorf("line %d: unknown sorter %q", node.Line, name)
	}
	*s = NodeSorter(name)
	return nil
}

// NodeFilter is one criterion by which the node table can be narrowed.
type NodeFilter string

const (
	FilterRelativePathIs               NodeFilter = "relative_path_is"
	FilterRelativePathIsNot            NodeFilter = "relative_path_is_not"
	FilterIRelativePathIs              NodeFilter = "irelative_path_is"
	FilterIRelativePathIsNot           NodeFilter = "irelative_path_is_not"
	FilterRelativePathDoesStartWith    NodeFilter = "relative_path_does_start_with"
	FilterRelativePathDoesNotStartWith NodeFilter = "relative_path_does_not_start_with"
	FilterRelativePathDoesContain      NodeFilter = "relative_path_does_contain"
	FilterRelativePathDoesNotContain   NodeFilter = "relative_path_does_not_contain"
	FilterRelativePathDoesEndWith      NodeFilter = "relative_path_does_end_with"
	FilterRelativePathDoesNotEndWith   NodeFilter = "relative_path_does_not_end_with"
)

var nodeFilters = map[NodeFilter]bool{
	FilterRelativePathIs: true, FilterRelativePathIsNot: true,
	FilterIRelativePathIs: true, FilterIRelativePathIsNot: true,
	FilterRelativePathDoesStartWith: true, FilterRelativePathDoesNotStartWith: true,
	FilterRelativePathDoesContain: true, FilterRelativePathDoesNotContain: true,
	FilterRelativePathDoesEndWith: true, FilterRelativePathDoesNotEndWith: true,
}

// UnmarshalYAML validates membership in the closed filter set.
func (f *NodeFilter) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	if !nodeFilters[NodeFilter(name)] {
		return fmt.Errorf("line %d: unknown filter %q", node.Line, name)
	}
	*f = NodeFilter(name)
	return nil
}

// NodeSorterApplicable pairs a sorter with its direction.
type NodeSorterApplicable struct {
	Sorter  NodeSorter `yaml:"sorter"`
	Reverse bool       `yaml:"reverse"`
}

// NodeFilterApplicable pairs a filter with its input.
type NodeFilterApplicable struct {
	Filter NodeFilter `yaml:"filter"`
	Input  string     `yaml:"input"`
}
