package database

import (
	"fmt"

	"gorm.io/gorm/schema"
)

// NamingStrategy keeps gorm's default table and column names but names
// foreign keys fk_<table>_<column>_<referenced_table>.
type NamingStrategy struct {
	schema.NamingStrategy
}

func (ns NamingStrategy) RelationshipFKName(rel schema.Relationship) string {
	// has-one/has-many relations live on the referenced side
	owner, referenced := rel.FieldSchema, rel.Schema
	if rel.Type == schema.BelongsTo {
		owner, referenced = rel.Schema, rel.FieldSchema
	}
	if owner == nil || referenced == nil || len(rel.References) == 0 || rel.References[0].ForeignKey == nil {
		return ns.NamingStrategy.RelationshipFKName(rel)
	}
	return fmt.Sprintf("fk_%s_%s_%s", owner.Table, rel.References[0].ForeignKey.DBName, referenced.Table)
}
