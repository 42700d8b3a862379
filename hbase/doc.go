// Package hbase defines the records of the HBase Thrift gateway that describe
// column families, cells and mutations, declared as tstruct struct types.
package hbase
